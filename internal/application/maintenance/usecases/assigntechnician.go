package usecases

import (
	"context"

	"campusfix/internal/domain/maintenance"
	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/domain/user"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	ReportID     uint
	TechnicianID uint
	AssignedBy   uint
	Role         authorization.UserRole
}

type AssignTechnicianResult struct {
	TicketID     uint   `json:"ticket_id"`
	ReportID     uint   `json:"report_id"`
	TechnicianID uint   `json:"technician_id"`
	Status       string `json:"status"`
}

type AssignTechnicianUseCase struct {
	reportRepo report.Repository
	ticketRepo maintenance.Repository
	userRepo   user.Repository
	txManager  transactionManager
	logger     logger.Interface
}

func NewAssignTechnicianUseCase(
	reportRepo report.Repository,
	ticketRepo maintenance.Repository,
	userRepo user.Repository,
	txManager transactionManager,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		reportRepo: reportRepo,
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute creates a maintenance ticket for an awaiting report and moves the
// report to in_progress. Ticket creation and the report status change commit
// or roll back together; when two admins race on the same report, the
// conditional status update and the unique index on damage_report_id let
// exactly one assignment through.
func (uc *AssignTechnicianUseCase) Execute(
	ctx context.Context,
	cmd AssignTechnicianCommand,
) (*AssignTechnicianResult, error) {
	uc.logger.Infow("executing assign technician use case",
		"report_id", cmd.ReportID,
		"technician_id", cmd.TechnicianID,
		"assigned_by", cmd.AssignedBy)

	if cmd.AssignedBy == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Role.IsAdmin() {
		uc.logger.Warnw("non-admin attempted assignment",
			"user_id", cmd.AssignedBy,
			"role", cmd.Role.String())
		return nil, errors.NewForbiddenError("only admins can assign technicians")
	}
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	technician, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to find technician", "error", err, "technician_id", cmd.TechnicianID)
		return nil, errors.NewNotFoundError("technician not found")
	}
	if !technician.IsTechnician() {
		return nil, errors.NewValidationError("assignee is not a technician")
	}

	var ticket *maintenance.Ticket

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		rep, err := uc.reportRepo.GetByID(txCtx, cmd.ReportID)
		if err != nil {
			return err
		}

		if !rep.Status().IsAwaiting() {
			return errors.NewInvalidStateError(
				"report is not awaiting assignment",
				"current status: "+rep.Status().String())
		}

		ticket, err = maintenance.NewTicket(cmd.ReportID, cmd.TechnicianID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Save(txCtx, ticket); err != nil {
			return err
		}

		if err := rep.ChangeStatus(vo.StatusInProgress); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		updated, err := uc.reportRepo.UpdateStatusIf(txCtx, rep, vo.StatusAwaiting)
		if err != nil {
			return err
		}
		if !updated {
			return errors.NewInvalidStateError("report was assigned concurrently")
		}

		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to assign technician", "error", err, "report_id", cmd.ReportID)
		return nil, errors.NewInternalError("failed to assign technician")
	}

	uc.logger.Infow("technician assigned",
		"ticket_id", ticket.ID(),
		"report_id", cmd.ReportID,
		"technician_id", cmd.TechnicianID)

	return &AssignTechnicianResult{
		TicketID:     ticket.ID(),
		ReportID:     cmd.ReportID,
		TechnicianID: cmd.TechnicianID,
		Status:       ticket.Status().String(),
	}, nil
}

func (uc *AssignTechnicianUseCase) validateCommand(cmd AssignTechnicianCommand) error {
	if cmd.ReportID == 0 {
		return errors.NewValidationError("report ID is required")
	}
	if cmd.TechnicianID == 0 {
		return errors.NewValidationError("technician ID is required")
	}
	return nil
}
