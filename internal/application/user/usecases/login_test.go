package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfix/internal/domain/user"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
)

func testUser(t *testing.T, role authorization.UserRole) *user.User {
	t.Helper()

	u, err := user.ReconstructUser(
		1,
		"Alex Campus",
		"alex@campus.example",
		"$2a$12$notarealhash",
		role,
		time.Now().Add(-24*time.Hour),
	)
	require.NoError(t, err)

	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	u := testUser(t, authorization.RoleReporter)

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "alex@campus.example", email)
			return u, nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alex@campus.example",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, uint(1), result.User.ID)
	assert.Equal(t, "reporter", result.User.Role)
}

func TestLoginUseCase_Execute_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	unknownRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	uc := NewLoginUseCase(unknownRepo, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})
	_, unknownErr := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@campus.example",
		Password: "whatever",
	})

	knownRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, authorization.RoleReporter), nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.NewUnauthorizedError("password verification failed")
		},
	}
	uc = NewLoginUseCase(knownRepo, hasher, &mockTokenIssuer{}, &mockLogger{})
	_, wrongErr := uc.Execute(context.Background(), LoginCommand{
		Email:    "alex@campus.example",
		Password: "wrong",
	})

	unknownApp := errors.GetAppError(unknownErr)
	wrongApp := errors.GetAppError(wrongErr)
	require.NotNil(t, unknownApp)
	require.NotNil(t, wrongApp)
	assert.Equal(t, errors.ErrorTypeUnauthorized, unknownApp.Type)
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
}

func TestLoginUseCase_Execute_MissingCredentials(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "", Password: "x"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "a@b.c", Password: ""})
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterUserUseCase_Execute_AlwaysReporter(t *testing.T) {
	var saved *user.User
	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(5)
		},
	}

	uc := NewRegisterUserUseCase(userRepo, &mockHasher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "New Student",
		Email:    "Student@Campus.example",
		Password: "longenoughpass",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.UserID)
	assert.Equal(t, "reporter", result.Role)
	assert.Equal(t, "student@campus.example", result.Email)
	assert.Equal(t, authorization.RoleReporter, saved.Role())
}

func TestRegisterUserUseCase_Execute_ShortPassword(t *testing.T) {
	uc := NewRegisterUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Name:     "New Student",
		Email:    "student@campus.example",
		Password: "short",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestListTechniciansUseCase_Execute_AdminOnly(t *testing.T) {
	userRepo := &mockUserRepository{
		ListTechniciansFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{testUser(t, authorization.RoleTechnician)}, nil
		},
	}
	uc := NewListTechniciansUseCase(userRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListTechniciansQuery{
		UserID: 30,
		Role:   authorization.RoleAdmin,
	})
	require.NoError(t, err)
	require.Len(t, result.Technicians, 1)
	assert.Equal(t, "technician", result.Technicians[0].Role)

	denied, err := uc.Execute(context.Background(), ListTechniciansQuery{
		UserID: 20,
		Role:   authorization.RoleTechnician,
	})
	assert.Nil(t, denied)
	assert.True(t, errors.IsForbiddenError(err))
}
