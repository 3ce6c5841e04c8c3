package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandtools-be/internal/entities"
	"brandtools-be/internal/repository"
)

var userColumns = []string{"id", "email", "name", "password_hash", "profile", "created_at", "updated_at"}

func userRow(profileJSON interface{}) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(userColumns).
		AddRow("11111111-1111-1111-1111-111111111111", "jamie@example.com", "Jamie", "hash", profileJSON, now, now)
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("jamie@example.com", "Jamie", "hash").
		WillReturnRows(userRow(nil))

	user, err := repo.Create("jamie@example.com", "hash", "Jamie")
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", user.Email)
	assert.Nil(t, user.Profile)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("jamie@example.com", "Jamie", "hash").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create("jamie@example.com", "hash", "Jamie")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, password_hash, profile, created_at, updated_at FROM users WHERE email = $1")).
		WithArgs("jamie@example.com").
		WillReturnRows(userRow([]byte(`{"companyName": "Acme", "onboardingCompleted": true}`)))

	user, err := repo.FindByEmail("jamie@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Acme", user.Profile.CompanyName)
	assert.True(t, user.Profile.OnboardingCompleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, password_hash, profile, created_at, updated_at FROM users WHERE id = $1")).
		WithArgs("missing-id").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err = repo.FindByID("missing-id")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	saved := `{"companyName": "Acme Coffee", "businessDescription": "Coffee subscriptions",
		"industry": "Food", "targetAudience": "Remote teams", "onboardingCompleted": true}`
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs("11111111-1111-1111-1111-111111111111", sqlmock.AnyArg()).
		WillReturnRows(userRow([]byte(saved)))

	user, err := repo.UpdateProfile("11111111-1111-1111-1111-111111111111", &entities.Profile{
		CompanyName:         "Acme Coffee",
		BusinessDescription: "Coffee subscriptions",
		Industry:            "Food",
		TargetAudience:      "Remote teams",
		OnboardingCompleted: true,
	})
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Acme Coffee", user.Profile.CompanyName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("11111111-1111-1111-1111-111111111111").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete("11111111-1111-1111-1111-111111111111"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete("missing-id"), repository.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
