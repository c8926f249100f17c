package usecases

import (
	"context"

	"campusfix/internal/application/maintenance/dto"
	"campusfix/internal/domain/maintenance"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type ListTasksQuery struct {
	TechnicianID uint
	Role         authorization.UserRole
	Status       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ListTasksResult struct {
	Tasks []*dto.TicketDTO `json:"tasks"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
}

type ListTasksUseCase struct {
	ticketRepo maintenance.Repository
	logger     logger.Interface
}

func NewListTasksUseCase(ticketRepo maintenance.Repository, logger logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists the tickets assigned to the calling technician.
func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	if query.TechnicianID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !query.Role.IsTechnician() {
		return nil, errors.NewForbiddenError("only technicians have a task list")
	}

	filter := maintenance.Filter{
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.GetTechnicianTickets(ctx, query.TechnicianID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err, "technician_id", query.TechnicianID)
		return nil, errors.NewInternalError("failed to list tasks")
	}

	return &ListTasksResult{
		Tasks: dto.ToTicketDTOs(tickets),
		Total: total,
		Page:  filter.Page,
	}, nil
}
