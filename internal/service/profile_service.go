package service

import (
	"fmt"
	"strings"

	"brandtools-be/internal/entities"
	"brandtools-be/internal/models"
	"brandtools-be/internal/repository"
)

// MissingFieldsError lists required onboarding fields absent from a submission
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ProfileService defines the interface for onboarding profile logic
type ProfileService interface {
	SubmitOnboarding(userID string, req *models.OnboardingRequest) (*entities.Profile, error)
	GetOnboarding(userID string) (*entities.Profile, bool, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// SubmitOnboarding validates and persists an onboarding submission. The
// profile is stored as a whole-record replace: fields present only in an
// earlier submission do not survive a later one.
func (s *profileService) SubmitOnboarding(userID string, req *models.OnboardingRequest) (*entities.Profile, error) {
	if missing := req.MissingRequired(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	user, err := s.userRepo.UpdateProfile(userID, req.ToProfile())
	if err != nil {
		return nil, err
	}

	return user.Profile, nil
}

// GetOnboarding returns the user's profile (or nil) and the completion flag
func (s *profileService) GetOnboarding(userID string) (*entities.Profile, bool, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, false, err
	}

	if user.Profile == nil {
		return nil, false, nil
	}
	return user.Profile, user.Profile.OnboardingCompleted, nil
}
