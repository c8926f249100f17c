package dto

import (
	"time"

	"campusfix/internal/domain/maintenance"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	DamageReportID  uint       `json:"damage_report_id"`
	TechnicianID    uint       `json:"technician_id"`
	Status          string     `json:"status"`
	TechnicianNotes string     `json:"technician_notes"`
	Images          []string   `json:"images"`
	CompletedAt     *time.Time `json:"completed_at"`
	VerifiedAt      *time.Time `json:"verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToTicketDTO(t *maintenance.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:              t.ID(),
		DamageReportID:  t.DamageReportID(),
		TechnicianID:    t.TechnicianID(),
		Status:          t.Status().String(),
		TechnicianNotes: t.TechnicianNotes(),
		Images:          t.Images(),
		CompletedAt:     t.CompletedAt(),
		VerifiedAt:      t.VerifiedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*maintenance.Ticket) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t))
	}
	return result
}
