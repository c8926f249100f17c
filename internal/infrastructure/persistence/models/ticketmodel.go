package models

import "gorm.io/datatypes"

type MaintenanceTicketModel struct {
	ID              uint           `gorm:"primaryKey"`
	DamageReportID  uint           `gorm:"not null;uniqueIndex"`
	TechnicianID    uint           `gorm:"not null;index"`
	Status          string         `gorm:"size:30;not null;index"`
	TechnicianNotes string         `gorm:"type:text"`
	Images          datatypes.JSON `gorm:"type:json"`
	CompletedAt     *int64
	VerifiedAt      *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// The unique index on DamageReportID backs the one-active-ticket-per-report
	// invariant at the storage layer.
}

func (MaintenanceTicketModel) TableName() string {
	return "maintenance_tickets"
}
