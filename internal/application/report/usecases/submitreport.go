package usecases

import (
	"context"
	"time"

	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
	"campusfix/internal/shared/sanitize"
)

type SubmitReportCommand struct {
	ReporterID  uint
	Role        authorization.UserRole
	Title       string
	Description string
	Location    string
	Priority    string
	Images      []string
}

type SubmitReportResult struct {
	ReportID  uint      `json:"report_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmitReportUseCase struct {
	reportRepo report.Repository
	draftStore reportDraftCleaner
	logger     logger.Interface
}

func NewSubmitReportUseCase(
	reportRepo report.Repository,
	draftStore reportDraftCleaner,
	logger logger.Interface,
) *SubmitReportUseCase {
	return &SubmitReportUseCase{
		reportRepo: reportRepo,
		draftStore: draftStore,
		logger:     logger,
	}
}

func (uc *SubmitReportUseCase) Execute(
	ctx context.Context,
	cmd SubmitReportCommand,
) (*SubmitReportResult, error) {
	uc.logger.Infow("executing submit report use case", "reporter_id", cmd.ReporterID)

	if cmd.ReporterID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Role.IsReporter() {
		uc.logger.Warnw("non-reporter attempted to submit a report",
			"user_id", cmd.ReporterID,
			"role", cmd.Role.String())
		return nil, errors.NewForbiddenError("only reporters can submit damage reports")
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	rep, err := report.NewDamageReport(
		cmd.ReporterID,
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		sanitize.Text(cmd.Location),
		priority,
		cmd.Images,
	)
	if err != nil {
		uc.logger.Warnw("invalid damage report", "error", err, "reporter_id", cmd.ReporterID)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reportRepo.Save(ctx, rep); err != nil {
		uc.logger.Errorw("failed to save damage report", "error", err, "reporter_id", cmd.ReporterID)
		return nil, errors.NewInternalError("failed to save damage report")
	}

	// The draft served its purpose; losing this delete only leaves a stale
	// draft that expires on its own.
	if uc.draftStore != nil {
		if err := uc.draftStore.ClearReportDraft(ctx, cmd.ReporterID); err != nil {
			uc.logger.Warnw("failed to clear report draft", "error", err, "reporter_id", cmd.ReporterID)
		}
	}

	uc.logger.Infow("damage report submitted",
		"report_id", rep.ID(),
		"reporter_id", cmd.ReporterID,
		"priority", priority.String())

	return &SubmitReportResult{
		ReportID:  rep.ID(),
		Status:    rep.Status().String(),
		CreatedAt: rep.CreatedAt(),
	}, nil
}
