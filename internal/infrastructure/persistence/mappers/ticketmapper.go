package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"campusfix/internal/domain/maintenance"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between MaintenanceTicket domain
// entities and persistence models.
type TicketMapper interface {
	ToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel
	ToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *maintenance.Ticket) *models.MaintenanceTicketModel {
	model := &models.MaintenanceTicketModel{
		ID:              t.ID(),
		DamageReportID:  t.DamageReportID(),
		TechnicianID:    t.TechnicianID(),
		Status:          t.Status().String(),
		TechnicianNotes: t.TechnicianNotes(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}

	imagesJSON, _ := json.Marshal(t.Images())
	model.Images = imagesJSON

	if t.CompletedAt() != nil {
		completed := t.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}

	if t.VerifiedAt() != nil {
		verified := t.VerifiedAt().UnixMilli()
		model.VerifiedAt = &verified
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.MaintenanceTicketModel) (*maintenance.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket (id=%d): %w", model.ID, err)
	}

	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket images (id=%d): %w", model.ID, err)
		}
	}

	var completedAt, verifiedAt *time.Time
	if model.CompletedAt != nil {
		t := millisToTime(*model.CompletedAt)
		completedAt = &t
	}
	if model.VerifiedAt != nil {
		t := millisToTime(*model.VerifiedAt)
		verifiedAt = &t
	}

	return maintenance.ReconstructTicket(
		model.ID,
		model.DamageReportID,
		model.TechnicianID,
		status,
		model.TechnicianNotes,
		images,
		completedAt,
		verifiedAt,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
