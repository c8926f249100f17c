package usecases

import (
	"context"

	"campusfix/internal/infrastructure/auth"
	"campusfix/internal/shared/authorization"
)

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context, query ListTechniciansQuery) (*ListTechniciansResult, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type passwordVerifier interface {
	Verify(password, hash string) error
}

type tokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (*auth.AccessToken, error)
}
