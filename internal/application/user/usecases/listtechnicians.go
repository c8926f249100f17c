package usecases

import (
	"context"

	"campusfix/internal/domain/user"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type ListTechniciansQuery struct {
	UserID uint
	Role   authorization.UserRole
}

type ListTechniciansResult struct {
	Technicians []UserDTO `json:"technicians"`
}

type ListTechniciansUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListTechniciansUseCase(userRepo user.Repository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute lists technician accounts for the admin assignment picker.
func (uc *ListTechniciansUseCase) Execute(
	ctx context.Context,
	query ListTechniciansQuery,
) (*ListTechniciansResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !query.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list technicians")
	}

	technicians, err := uc.userRepo.ListTechnicians(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, errors.NewInternalError("failed to list technicians")
	}

	result := &ListTechniciansResult{Technicians: make([]UserDTO, 0, len(technicians))}
	for _, t := range technicians {
		result.Technicians = append(result.Technicians, UserDTO{
			ID:    t.ID(),
			Name:  t.Name(),
			Email: t.Email(),
			Role:  t.Role().String(),
		})
	}

	return result, nil
}
