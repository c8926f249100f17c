package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusfix/internal/domain/maintenance"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/infrastructure/persistence/mappers"
	"campusfix/internal/infrastructure/persistence/models"
	"campusfix/internal/shared/db"
	"campusfix/internal/shared/errors"
)

var allowedTicketOrderByFields = map[string]bool{
	"id":               true,
	"damage_report_id": true,
	"technician_id":    true,
	"status":           true,
	"created_at":       true,
	"updated_at":       true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *maintenance.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewInvalidStateError("report already has a maintenance ticket")
		}
		return fmt.Errorf("failed to save maintenance ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
	var model models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("maintenance ticket not found")
		}
		return nil, fmt.Errorf("failed to find maintenance ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByReportID(ctx context.Context, damageReportID uint) (*maintenance.Ticket, error) {
	var model models.MaintenanceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("damage_report_id = ?", damageReportID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("maintenance ticket not found")
		}
		return nil, fmt.Errorf("failed to find maintenance ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetTechnicianTickets(
	ctx context.Context,
	technicianID uint,
	filter maintenance.Filter,
) ([]*maintenance.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MaintenanceTicketModel{}).
		Where("technician_id = ?", technicianID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance tickets: %w", err)
	}

	query = query.Order(buildOrderClause(filter.SortBy, filter.SortOrder, allowedTicketOrderByFields))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var modelList []models.MaintenanceTicketModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance tickets: %w", err)
	}

	tickets := make([]*maintenance.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

// UpdateStatusIf persists the ticket's pending changes (status, notes,
// images, completion and verification timestamps) guarded on the stored
// status still matching expected.
func (r *TicketRepository) UpdateStatusIf(
	ctx context.Context,
	t *maintenance.Ticket,
	expected vo.Status,
) (bool, error) {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"status":           model.Status,
		"technician_notes": model.TechnicianNotes,
		"images":           model.Images,
		"updated_at":       model.UpdatedAt,
	}
	if model.CompletedAt != nil {
		updates["completed_at"] = *model.CompletedAt
	}
	if model.VerifiedAt != nil {
		updates["verified_at"] = *model.VerifiedAt
	}

	result := tx.
		Model(&models.MaintenanceTicketModel{}).
		Where("id = ? AND status = ?", t.ID(), expected.String()).
		Updates(updates)

	if result.Error != nil {
		return false, fmt.Errorf("failed to update maintenance ticket: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}
