package service

import (
	"errors"
	"fmt"
	"strings"

	"brandtools-be/internal/entities"
	"brandtools-be/internal/jwt"
	"brandtools-be/internal/models"
	"brandtools-be/internal/password"
	"brandtools-be/internal/repository"
)

// ErrInvalidCredentials is the single login failure for both an unknown
// email and a wrong password, so responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(req *models.SignupRequest) (*entities.User, string, error)
	Login(req *models.LoginRequest) (*entities.User, string, error)
	Me(userID string) (*entities.User, error)
	DeleteAccount(userID string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a new user account and returns the user with a session token
func (s *authService) Signup(req *models.SignupRequest) (*entities.User, string, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, "", invalidInput("Email, password, and name are required")
	}
	if !validateEmail(req.Email) {
		return nil, "", invalidInput("Invalid email format")
	}
	name := strings.TrimSpace(req.Name)
	if !validateName(name) {
		return nil, "", invalidInput("Name must be between 2 and 50 characters")
	}
	if msg := validatePassword(req.Password); msg != "" {
		return nil, "", invalidInput("%s", msg)
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(strings.ToLower(req.Email), hashed, name)
	if err != nil {
		// Email uniqueness is enforced by the database constraint, so a
		// concurrent signup with the same email still surfaces here.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, "", repository.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns the user with a session token
func (s *authService) Login(req *models.LoginRequest) (*entities.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", invalidInput("Email and password are required")
	}
	if !validateEmail(req.Email) {
		return nil, "", invalidInput("Invalid email format")
	}

	user, err := s.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Me loads the user referenced by a verified session claim. The claim may
// outlive the account, in which case repository.ErrUserNotFound propagates.
func (s *authService) Me(userID string) (*entities.User, error) {
	return s.userRepo.FindByID(userID)
}

// DeleteAccount removes the user record
func (s *authService) DeleteAccount(userID string) error {
	return s.userRepo.Delete(userID)
}
