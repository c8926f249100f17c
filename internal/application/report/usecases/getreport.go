package usecases

import (
	"context"

	maintenancedto "campusfix/internal/application/maintenance/dto"
	"campusfix/internal/application/report/dto"
	"campusfix/internal/domain/maintenance"
	"campusfix/internal/domain/report"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
	"campusfix/internal/shared/logger"
)

type GetReportQuery struct {
	ReportID uint
	UserID   uint
	Role     authorization.UserRole
}

type GetReportUseCase struct {
	reportRepo report.Repository
	ticketRepo maintenance.Repository
	logger     logger.Interface
}

func NewGetReportUseCase(
	reportRepo report.Repository,
	ticketRepo maintenance.Repository,
	logger logger.Interface,
) *GetReportUseCase {
	return &GetReportUseCase{
		reportRepo: reportRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetReportUseCase) Execute(ctx context.Context, query GetReportQuery) (*dto.ReportDTO, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	rep, err := uc.reportRepo.GetByID(ctx, query.ReportID)
	if err != nil {
		return nil, err
	}

	if !rep.CanBeViewedBy(query.UserID, query.Role.String()) {
		uc.logger.Warnw("report access denied",
			"report_id", query.ReportID,
			"user_id", query.UserID,
			"role", query.Role.String())
		return nil, errors.NewForbiddenError("you do not have access to this report")
	}

	result := dto.ToReportDTO(rep)

	ticket, err := uc.ticketRepo.GetByReportID(ctx, query.ReportID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
	} else {
		result.Ticket = maintenancedto.ToTicketDTO(ticket)
	}

	return result, nil
}
