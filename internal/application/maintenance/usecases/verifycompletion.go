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
)

type VerifyCompletionCommand struct {
	TicketID   uint
	VerifiedBy uint
	Role       authorization.UserRole
}

type VerifyCompletionResult struct {
	TicketID   uint       `json:"ticket_id"`
	ReportID   uint       `json:"report_id"`
	Status     string     `json:"status"`
	VerifiedAt *time.Time `json:"verified_at"`
}

type VerifyCompletionUseCase struct {
	reportRepo report.Repository
	ticketRepo maintenance.Repository
	txManager  transactionManager
	logger     logger.Interface
}

func NewVerifyCompletionUseCase(
	reportRepo report.Repository,
	ticketRepo maintenance.Repository,
	txManager transactionManager,
	logger logger.Interface,
) *VerifyCompletionUseCase {
	return &VerifyCompletionUseCase{
		reportRepo: reportRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute closes out a ticket awaiting verification. Both ticket and report
// land on done atomically; done is terminal, so there is nothing after this.
func (uc *VerifyCompletionUseCase) Execute(
	ctx context.Context,
	cmd VerifyCompletionCommand,
) (*VerifyCompletionResult, error) {
	uc.logger.Infow("executing verify completion use case",
		"ticket_id", cmd.TicketID,
		"verified_by", cmd.VerifiedBy)

	if cmd.VerifiedBy == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can verify completions")
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

		if !ticket.Status().IsAwaitingVerification() {
			return errors.NewInvalidStateError(
				"ticket is not awaiting verification",
				"current status: "+ticket.Status().String())
		}

		if err := ticket.Verify(); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		updated, err := uc.ticketRepo.UpdateStatusIf(txCtx, ticket, vo.StatusAwaitingVerification)
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
		if err := rep.ChangeStatus(vo.StatusDone); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		updated, err = uc.reportRepo.UpdateStatusIf(txCtx, rep, vo.StatusAwaitingVerification)
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
		uc.logger.Errorw("failed to verify completion", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to verify completion")
	}

	uc.logger.Infow("completion verified",
		"ticket_id", ticket.ID(),
		"report_id", ticket.DamageReportID())

	return &VerifyCompletionResult{
		TicketID:   ticket.ID(),
		ReportID:   ticket.DamageReportID(),
		Status:     ticket.Status().String(),
		VerifiedAt: ticket.VerifiedAt(),
	}, nil
}
