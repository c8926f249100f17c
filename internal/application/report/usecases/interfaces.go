package usecases

import (
	"context"

	"campusfix/internal/application/report/dto"
)

type SubmitReportExecutor interface {
	Execute(ctx context.Context, cmd SubmitReportCommand) (*SubmitReportResult, error)
}

type GetReportExecutor interface {
	Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error)
}

type ListReportsExecutor interface {
	Execute(ctx context.Context, query ListReportsQuery) (*ListReportsResult, error)
}

// reportDraftCleaner is the slice of the draft store the submit use case
// needs: discarding the reporter's saved form once the real report exists.
type reportDraftCleaner interface {
	ClearReportDraft(ctx context.Context, userID uint) error
}
