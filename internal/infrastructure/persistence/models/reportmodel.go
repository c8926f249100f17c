package models

import "gorm.io/datatypes"

type DamageReportModel struct {
	ID          uint           `gorm:"primaryKey"`
	ReporterID  uint           `gorm:"not null;index"`
	Title       string         `gorm:"size:200;not null"`
	Description string         `gorm:"type:text;not null"`
	Location    string         `gorm:"size:200;not null"`
	Priority    string         `gorm:"size:20;not null;index"`
	Images      datatypes.JSON `gorm:"type:json"`
	Status      string         `gorm:"size:30;not null;index"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (DamageReportModel) TableName() string {
	return "damage_reports"
}
