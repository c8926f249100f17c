package usecases

import (
	"context"

	"campusfix/internal/domain/user"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserResult struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   passwordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher passwordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates a reporter account. Technician and admin accounts are
// provisioned out of band; self-registration never grants those roles.
func (uc *RegisterUserUseCase) Execute(
	ctx context.Context,
	cmd RegisterUserCommand,
) (*RegisterUserResult, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("registration failed")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, authorization.RoleReporter)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("registration failed")
	}

	uc.logger.Infow("user registered", "user_id", u.ID())

	return &RegisterUserResult{
		UserID: u.ID(),
		Email:  u.Email(),
		Role:   u.Role().String(),
	}, nil
}
