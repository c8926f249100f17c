package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/infrastructure/persistence/mappers"
	"campusfix/internal/infrastructure/persistence/models"
	"campusfix/internal/shared/db"
	"campusfix/internal/shared/errors"
)

// allowedReportOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedReportOrderByFields = map[string]bool{
	"id":          true,
	"reporter_id": true,
	"priority":    true,
	"status":      true,
	"created_at":  true,
	"updated_at":  true,
}

type ReportRepository struct {
	db     *gorm.DB
	mapper mappers.ReportMapper
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db:     db,
		mapper: mappers.NewReportMapper(),
	}
}

func (r *ReportRepository) Save(ctx context.Context, rep *report.DamageReport) error {
	model := r.mapper.ToModel(rep)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save damage report: %w", err)
	}

	if err := rep.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ReportRepository) GetByID(ctx context.Context, reportID uint) (*report.DamageReport, error) {
	var model models.DamageReportModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, reportID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("damage report not found")
		}
		return nil, fmt.Errorf("failed to find damage report: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReportRepository) List(
	ctx context.Context,
	filter report.Filter,
) ([]*report.DamageReport, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.DamageReportModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count damage reports: %w", err)
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, allowedReportOrderByFields))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var modelList []models.DamageReportModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list damage reports: %w", err)
	}

	reports := make([]*report.DamageReport, 0, len(modelList))
	for i := range modelList {
		rep, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, rep)
	}

	return reports, total, nil
}

// UpdateStatusIf writes the report's current in-memory status guarded on the
// stored status still matching expected. RowsAffected == 0 means a concurrent
// transition won; the caller treats that as an invalid state.
func (r *ReportRepository) UpdateStatusIf(
	ctx context.Context,
	rep *report.DamageReport,
	expected vo.Status,
) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DamageReportModel{}).
		Where("id = ? AND status = ?", rep.ID(), expected.String()).
		Updates(map[string]interface{}{
			"status":     rep.Status().String(),
			"updated_at": rep.UpdatedAt().UnixMilli(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to update damage report status: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func buildOrderClause(sortBy, sortOrder string, allowed map[string]bool) string {
	field := "created_at"
	if allowed[sortBy] {
		field = sortBy
	}

	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}

	return fmt.Sprintf("%s %s", field, order)
}
