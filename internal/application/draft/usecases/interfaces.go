package usecases

import (
	"context"

	"campusfix/internal/infrastructure/cache"
)

type maintenanceDraftStore interface {
	SaveMaintenanceDraft(ctx context.Context, userID, ticketID uint, draft *cache.MaintenanceDraft) error
	GetMaintenanceDraft(ctx context.Context, userID, ticketID uint) (*cache.MaintenanceDraft, error)
	ClearMaintenanceDraft(ctx context.Context, userID, ticketID uint) error
}

type reportDraftStore interface {
	SaveReportDraft(ctx context.Context, userID uint, draft *cache.ReportDraft) error
	GetReportDraft(ctx context.Context, userID uint) (*cache.ReportDraft, error)
	ClearReportDraft(ctx context.Context, userID uint) error
}
