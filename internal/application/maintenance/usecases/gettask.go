package usecases

import (
	"context"

	"campusfix/internal/application/maintenance/dto"
	"campusfix/internal/domain/maintenance"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type GetTaskQuery struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
}

type GetTaskUseCase struct {
	ticketRepo maintenance.Repository
	logger     logger.Interface
}

func NewGetTaskUseCase(ticketRepo maintenance.Repository, logger logger.Interface) *GetTaskUseCase {
	return &GetTaskUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns a single ticket. Admins see any ticket; a technician only
// sees their own.
func (uc *GetTaskUseCase) Execute(ctx context.Context, query GetTaskQuery) (*dto.TicketDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !query.Role.IsAdmin() && !ticket.IsOwnedBy(query.UserID) {
		uc.logger.Warnw("ticket access denied",
			"ticket_id", query.TicketID,
			"user_id", query.UserID,
			"role", query.Role.String())
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.ToTicketDTO(ticket), nil
}
