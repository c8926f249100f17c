package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/infrastructure/persistence/models"
)

// ReportMapper handles the conversion between DamageReport domain entities
// and persistence models.
type ReportMapper interface {
	ToModel(r *report.DamageReport) *models.DamageReportModel
	ToDomain(model *models.DamageReportModel) (*report.DamageReport, error)
}

type ReportMapperImpl struct{}

func NewReportMapper() ReportMapper {
	return &ReportMapperImpl{}
}

func (m *ReportMapperImpl) ToModel(r *report.DamageReport) *models.DamageReportModel {
	model := &models.DamageReportModel{
		ID:          r.ID(),
		ReporterID:  r.ReporterID(),
		Title:       r.Title(),
		Description: r.Description(),
		Location:    r.Location(),
		Priority:    r.Priority().String(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
		UpdatedAt:   r.UpdatedAt().UnixMilli(),
	}

	imagesJSON, _ := json.Marshal(r.Images())
	model.Images = imagesJSON

	return model
}

func (m *ReportMapperImpl) ToDomain(model *models.DamageReportModel) (*report.DamageReport, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in report (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in report (id=%d): %w", model.ID, err)
	}

	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report images (id=%d): %w", model.ID, err)
		}
	}

	return report.ReconstructDamageReport(
		model.ID,
		model.ReporterID,
		model.Title,
		model.Description,
		model.Location,
		priority,
		images,
		status,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
