package report

import (
	"fmt"
	"time"

	vo "campusfix/internal/domain/report/valueobjects"
)

// DamageReport is the complaint filed by a reporter describing a facility
// issue. Title, description, location, priority, and images are immutable
// after creation; only the status moves, and once a maintenance ticket exists
// it always moves together with the ticket's status.
type DamageReport struct {
	id          uint
	reporterID  uint
	title       string
	description string
	location    string
	priority    vo.Priority
	images      []string
	status      vo.Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDamageReport(
	reporterID uint,
	title string,
	description string,
	location string,
	priority vo.Priority,
	images []string,
) (*DamageReport, error) {
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(location) == 0 {
		return nil, fmt.Errorf("location is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if images == nil {
		images = []string{}
	}

	now := time.Now()

	return &DamageReport{
		reporterID:  reporterID,
		title:       title,
		description: description,
		location:    location,
		priority:    priority,
		images:      images,
		status:      vo.StatusAwaiting,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructDamageReport(
	id uint,
	reporterID uint,
	title string,
	description string,
	location string,
	priority vo.Priority,
	images []string,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*DamageReport, error) {
	if id == 0 {
		return nil, fmt.Errorf("report ID cannot be zero")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if images == nil {
		images = []string{}
	}

	return &DamageReport{
		id:          id,
		reporterID:  reporterID,
		title:       title,
		description: description,
		location:    location,
		priority:    priority,
		images:      images,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *DamageReport) ID() uint {
	return r.id
}

func (r *DamageReport) ReporterID() uint {
	return r.reporterID
}

func (r *DamageReport) Title() string {
	return r.title
}

func (r *DamageReport) Description() string {
	return r.description
}

func (r *DamageReport) Location() string {
	return r.location
}

func (r *DamageReport) Priority() vo.Priority {
	return r.priority
}

func (r *DamageReport) Images() []string {
	imagesCopy := make([]string, len(r.images))
	copy(imagesCopy, r.images)
	return imagesCopy
}

func (r *DamageReport) Status() vo.Status {
	return r.status
}

func (r *DamageReport) CreatedAt() time.Time {
	return r.createdAt
}

func (r *DamageReport) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *DamageReport) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("report ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("report ID cannot be zero")
	}
	r.id = id
	return nil
}

// ChangeStatus moves the report along the lifecycle. Callers must persist
// the change together with the linked ticket's status in the same
// transaction.
func (r *DamageReport) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if !r.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", r.status, newStatus)
	}

	r.status = newStatus
	r.updatedAt = time.Now()

	return nil
}

// GetOwnerID implements authorization.OwnedResource.
func (r *DamageReport) GetOwnerID() uint {
	return r.reporterID
}

func (r *DamageReport) CanBeViewedBy(userID uint, role string) bool {
	if role == "admin" {
		return true
	}
	return r.reporterID == userID
}
