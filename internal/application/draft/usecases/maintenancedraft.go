package usecases

import (
	"context"

	"campusfix/internal/domain/maintenance"
	"campusfix/internal/infrastructure/cache"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type SaveMaintenanceDraftCommand struct {
	TechnicianID uint
	Role         authorization.UserRole
	TicketID     uint
	Description  string
	Images       []string
}

type MaintenanceDraftQuery struct {
	TechnicianID uint
	Role         authorization.UserRole
	TicketID     uint
}

// MaintenanceDraftUseCase manages a technician's unsubmitted completion form.
// Drafts live in redis with a TTL and never touch ticket state.
type MaintenanceDraftUseCase struct {
	store      maintenanceDraftStore
	ticketRepo maintenance.Repository
	logger     logger.Interface
}

func NewMaintenanceDraftUseCase(
	store maintenanceDraftStore,
	ticketRepo maintenance.Repository,
	logger logger.Interface,
) *MaintenanceDraftUseCase {
	return &MaintenanceDraftUseCase{
		store:      store,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *MaintenanceDraftUseCase) Save(ctx context.Context, cmd SaveMaintenanceDraftCommand) error {
	if err := uc.authorize(cmd.TechnicianID, cmd.Role); err != nil {
		return err
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	ticket, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if !ticket.IsOwnedBy(cmd.TechnicianID) {
		return errors.NewForbiddenError("ticket is assigned to another technician")
	}

	draft := &cache.MaintenanceDraft{
		Description: cmd.Description,
		Images:      cmd.Images,
	}
	if err := uc.store.SaveMaintenanceDraft(ctx, cmd.TechnicianID, cmd.TicketID, draft); err != nil {
		uc.logger.Errorw("failed to save maintenance draft",
			"error", err,
			"ticket_id", cmd.TicketID,
			"technician_id", cmd.TechnicianID)
		return errors.NewInternalError("failed to save draft")
	}

	return nil
}

// Get returns the technician's draft for a ticket, or nil when none exists.
func (uc *MaintenanceDraftUseCase) Get(
	ctx context.Context,
	query MaintenanceDraftQuery,
) (*cache.MaintenanceDraft, error) {
	if err := uc.authorize(query.TechnicianID, query.Role); err != nil {
		return nil, err
	}

	draft, err := uc.store.GetMaintenanceDraft(ctx, query.TechnicianID, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load maintenance draft",
			"error", err,
			"ticket_id", query.TicketID,
			"technician_id", query.TechnicianID)
		return nil, errors.NewInternalError("failed to load draft")
	}

	return draft, nil
}

func (uc *MaintenanceDraftUseCase) Clear(ctx context.Context, query MaintenanceDraftQuery) error {
	if err := uc.authorize(query.TechnicianID, query.Role); err != nil {
		return err
	}

	if err := uc.store.ClearMaintenanceDraft(ctx, query.TechnicianID, query.TicketID); err != nil {
		uc.logger.Errorw("failed to clear maintenance draft",
			"error", err,
			"ticket_id", query.TicketID,
			"technician_id", query.TechnicianID)
		return errors.NewInternalError("failed to clear draft")
	}

	return nil
}

func (uc *MaintenanceDraftUseCase) authorize(userID uint, role authorization.UserRole) error {
	if userID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !role.IsTechnician() {
		return errors.NewForbiddenError("only technicians keep completion drafts")
	}
	return nil
}
