package usecases

import (
	"context"

	"campusfix/internal/application/report/dto"
	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type ListReportsQuery struct {
	UserID    uint
	Role      authorization.UserRole
	Status    string
	Priority  string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListReportsResult struct {
	Reports []*dto.ReportDTO `json:"reports"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
}

type ListReportsUseCase struct {
	reportRepo report.Repository
	logger     logger.Interface
}

func NewListReportsUseCase(reportRepo report.Repository, logger logger.Interface) *ListReportsUseCase {
	return &ListReportsUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Execute lists reports scoped by role: admins see everything, reporters see
// only their own submissions. Technicians work from their task list instead.
func (uc *ListReportsUseCase) Execute(
	ctx context.Context,
	query ListReportsQuery,
) (*ListReportsResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if query.Role.IsTechnician() {
		return nil, errors.NewForbiddenError("technicians access work through their task list")
	}

	filter := report.Filter{
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
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	if !query.Role.IsAdmin() {
		reporterID := query.UserID
		filter.ReporterID = &reporterID
	}

	reports, total, err := uc.reportRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list damage reports", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to list damage reports")
	}

	return &ListReportsResult{
		Reports: dto.ToReportDTOs(reports),
		Total:   total,
		Page:    filter.Page,
	}, nil
}
