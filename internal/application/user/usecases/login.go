package usecases

import (
	"context"

	"campusfix/internal/domain/user"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string  `json:"access_token"`
	ExpiresIn   int64   `json:"expires_in"`
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginUseCase struct {
	userRepo     user.Repository
	hasher       passwordVerifier
	tokenService tokenIssuer
	logger       logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher passwordVerifier,
	tokenService tokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Execute checks credentials and issues an access token. Unknown email and
// wrong password produce the same error so the endpoint does not leak which
// accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, errors.NewInternalError("login failed")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, err := uc.tokenService.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("login failed")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		AccessToken: token.Token,
		ExpiresIn:   token.ExpiresIn,
		User: UserDTO{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
			Role:  u.Role().String(),
		},
	}, nil
}
