package usecases

import (
	"context"

	"campusfix/internal/domain/user"
	"campusfix/internal/infrastructure/auth"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc            func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*user.User, error)
	ListTechniciansFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListTechnicians(ctx context.Context) ([]*user.User, error) {
	if m.ListTechniciansFunc != nil {
		return m.ListTechniciansFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (*auth.AccessToken, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role authorization.UserRole) (*auth.AccessToken, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return &auth.AccessToken{Token: "token", ExpiresIn: 3600}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
