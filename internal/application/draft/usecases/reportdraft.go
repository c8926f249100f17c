package usecases

import (
	"context"

	"campusfix/internal/infrastructure/cache"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type SaveReportDraftCommand struct {
	ReporterID  uint
	Role        authorization.UserRole
	Title       string
	Description string
	Location    string
	Priority    string
	Images      []string
}

type ReportDraftQuery struct {
	ReporterID uint
	Role       authorization.UserRole
}

// ReportDraftUseCase manages a reporter's unsubmitted damage report form.
// A reporter holds at most one draft at a time.
type ReportDraftUseCase struct {
	store  reportDraftStore
	logger logger.Interface
}

func NewReportDraftUseCase(store reportDraftStore, logger logger.Interface) *ReportDraftUseCase {
	return &ReportDraftUseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *ReportDraftUseCase) Save(ctx context.Context, cmd SaveReportDraftCommand) error {
	if err := uc.authorize(cmd.ReporterID, cmd.Role); err != nil {
		return err
	}

	draft := &cache.ReportDraft{
		Title:       cmd.Title,
		Description: cmd.Description,
		Location:    cmd.Location,
		Priority:    cmd.Priority,
		Images:      cmd.Images,
	}
	if err := uc.store.SaveReportDraft(ctx, cmd.ReporterID, draft); err != nil {
		uc.logger.Errorw("failed to save report draft", "error", err, "reporter_id", cmd.ReporterID)
		return errors.NewInternalError("failed to save draft")
	}

	return nil
}

// Get returns the reporter's draft, or nil when none exists.
func (uc *ReportDraftUseCase) Get(ctx context.Context, query ReportDraftQuery) (*cache.ReportDraft, error) {
	if err := uc.authorize(query.ReporterID, query.Role); err != nil {
		return nil, err
	}

	draft, err := uc.store.GetReportDraft(ctx, query.ReporterID)
	if err != nil {
		uc.logger.Errorw("failed to load report draft", "error", err, "reporter_id", query.ReporterID)
		return nil, errors.NewInternalError("failed to load draft")
	}

	return draft, nil
}

func (uc *ReportDraftUseCase) Clear(ctx context.Context, query ReportDraftQuery) error {
	if err := uc.authorize(query.ReporterID, query.Role); err != nil {
		return err
	}

	if err := uc.store.ClearReportDraft(ctx, query.ReporterID); err != nil {
		uc.logger.Errorw("failed to clear report draft", "error", err, "reporter_id", query.ReporterID)
		return errors.NewInternalError("failed to clear draft")
	}

	return nil
}

func (uc *ReportDraftUseCase) authorize(userID uint, role authorization.UserRole) error {
	if userID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !role.IsReporter() {
		return errors.NewForbiddenError("only reporters keep report drafts")
	}
	return nil
}
