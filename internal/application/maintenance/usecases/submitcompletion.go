package usecases

import (
	"context"
	"time"

	"campusfix/internal/domain/maintenance"
	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
	"campusfix/internal/shared/sanitize"
)

type SubmitCompletionCommand struct {
	TicketID     uint
	TechnicianID uint
	Role         authorization.UserRole
	Notes        string
	Images       []string
}

type SubmitCompletionResult struct {
	TicketID    uint       `json:"ticket_id"`
	ReportID    uint       `json:"report_id"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}

type SubmitCompletionUseCase struct {
	reportRepo report.Repository
	ticketRepo maintenance.Repository
	txManager  transactionManager
	draftStore maintenanceDraftCleaner
	logger     logger.Interface
}

func NewSubmitCompletionUseCase(
	reportRepo report.Repository,
	ticketRepo maintenance.Repository,
	txManager transactionManager,
	draftStore maintenanceDraftCleaner,
	logger logger.Interface,
) *SubmitCompletionUseCase {
	return &SubmitCompletionUseCase{
		reportRepo: reportRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		draftStore: draftStore,
		logger:     logger,
	}
}

// Execute records the owning technician's completion and moves ticket and
// report to awaiting_verification in one transaction.
func (uc *SubmitCompletionUseCase) Execute(
	ctx context.Context,
	cmd SubmitCompletionCommand,
) (*SubmitCompletionResult, error) {
	uc.logger.Infow("executing submit completion use case",
		"ticket_id", cmd.TicketID,
		"technician_id", cmd.TechnicianID)

	if cmd.TechnicianID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Role.IsTechnician() {
		return nil, errors.NewForbiddenError("only technicians can submit completions")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var ticket *maintenance.Ticket

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		ticket, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if !ticket.IsOwnedBy(cmd.TechnicianID) {
			uc.logger.Warnw("completion attempt on unowned ticket",
				"ticket_id", cmd.TicketID,
				"technician_id", cmd.TechnicianID,
				"owner_id", ticket.TechnicianID())
			return errors.NewForbiddenError("ticket is assigned to another technician")
		}

		if !ticket.Status().IsInProgress() {
			return errors.NewInvalidStateError(
				"completion can only be submitted for an in-progress ticket",
				"current status: "+ticket.Status().String())
		}

		if err := ticket.Complete(sanitize.Text(cmd.Notes), cmd.Images); err != nil {
			return errors.NewValidationError(err.Error())
		}

		updated, err := uc.ticketRepo.UpdateStatusIf(txCtx, ticket, vo.StatusInProgress)
		if err != nil {
			return err
		}
		if !updated {
			return errors.NewInvalidStateError("ticket status changed concurrently")
		}

		rep, err := uc.reportRepo.GetByID(txCtx, ticket.DamageReportID())
		if err != nil {
			return err
		}
		if err := rep.ChangeStatus(vo.StatusAwaitingVerification); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		updated, err = uc.reportRepo.UpdateStatusIf(txCtx, rep, vo.StatusInProgress)
		if err != nil {
			return err
		}
		if !updated {
			return errors.NewInvalidStateError("report status changed concurrently")
		}

		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to submit completion", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to submit completion")
	}

	if uc.draftStore != nil {
		if err := uc.draftStore.ClearMaintenanceDraft(ctx, cmd.TechnicianID, cmd.TicketID); err != nil {
			uc.logger.Warnw("failed to clear maintenance draft",
				"error", err,
				"ticket_id", cmd.TicketID,
				"technician_id", cmd.TechnicianID)
		}
	}

	uc.logger.Infow("completion submitted",
		"ticket_id", ticket.ID(),
		"report_id", ticket.DamageReportID())

	return &SubmitCompletionResult{
		TicketID:    ticket.ID(),
		ReportID:    ticket.DamageReportID(),
		Status:      ticket.Status().String(),
		CompletedAt: ticket.CompletedAt(),
	}, nil
}
