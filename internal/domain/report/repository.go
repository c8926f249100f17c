package report

import (
	"context"

	vo "campusfix/internal/domain/report/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, r *DamageReport) error
	GetByID(ctx context.Context, reportID uint) (*DamageReport, error)
	List(ctx context.Context, filter Filter) ([]*DamageReport, int64, error)

	// UpdateStatusIf moves the report's status from expected to the report's
	// current in-memory status using a conditional write. It returns false
	// when the stored status no longer matches expected, which means a
	// concurrent transition won the race; the caller must treat that as an
	// invalid state and roll back any paired write.
	UpdateStatusIf(ctx context.Context, r *DamageReport, expected vo.Status) (bool, error)
}

type Filter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	ReporterID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
