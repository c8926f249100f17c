package dto

import (
	"time"

	maintenancedto "campusfix/internal/application/maintenance/dto"
	"campusfix/internal/domain/report"
)

type ReportDTO struct {
	ID          uint      `json:"id"`
	ReporterID  uint      `json:"reporter_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Priority    string    `json:"priority"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Ticket is present once a technician has been assigned.
	Ticket *maintenancedto.TicketDTO `json:"ticket,omitempty"`
}

func ToReportDTO(r *report.DamageReport) *ReportDTO {
	if r == nil {
		return nil
	}

	return &ReportDTO{
		ID:          r.ID(),
		ReporterID:  r.ReporterID(),
		Title:       r.Title(),
		Description: r.Description(),
		Location:    r.Location(),
		Priority:    r.Priority().String(),
		Images:      r.Images(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func ToReportDTOs(reports []*report.DamageReport) []*ReportDTO {
	result := make([]*ReportDTO, 0, len(reports))
	for _, r := range reports {
		result = append(result, ToReportDTO(r))
	}
	return result
}
