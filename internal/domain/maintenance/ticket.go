package maintenance

import (
	"fmt"
	"time"

	vo "campusfix/internal/domain/report/valueobjects"
)

// Ticket is the work order created when a technician is assigned to a damage
// report. It shares the report's status enum: after creation the two are
// always persisted together, to the same value. The technician never changes
// once set, and a done ticket never transitions again.
type Ticket struct {
	id              uint
	damageReportID  uint
	technicianID    uint
	status          vo.Status
	technicianNotes string
	images          []string
	completedAt     *time.Time
	verifiedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewTicket creates a ticket for an assignment. Tickets are born in_progress;
// the awaiting state belongs to the report before any ticket exists.
func NewTicket(damageReportID uint, technicianID uint) (*Ticket, error) {
	if damageReportID == 0 {
		return nil, fmt.Errorf("damage report ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}

	now := time.Now()

	return &Ticket{
		damageReportID: damageReportID,
		technicianID:   technicianID,
		status:         vo.StatusInProgress,
		images:         []string{},
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	damageReportID uint,
	technicianID uint,
	status vo.Status,
	technicianNotes string,
	images []string,
	completedAt *time.Time,
	verifiedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if damageReportID == 0 {
		return nil, fmt.Errorf("damage report ID is required")
	}
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if images == nil {
		images = []string{}
	}

	return &Ticket{
		id:              id,
		damageReportID:  damageReportID,
		technicianID:    technicianID,
		status:          status,
		technicianNotes: technicianNotes,
		images:          images,
		completedAt:     completedAt,
		verifiedAt:      verifiedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) DamageReportID() uint {
	return t.damageReportID
}

func (t *Ticket) TechnicianID() uint {
	return t.technicianID
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) TechnicianNotes() string {
	return t.technicianNotes
}

func (t *Ticket) Images() []string {
	imagesCopy := make([]string, len(t.images))
	copy(imagesCopy, t.images)
	return imagesCopy
}

func (t *Ticket) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *Ticket) VerifiedAt() *time.Time {
	return t.verifiedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy reports whether the given technician owns this ticket.
func (t *Ticket) IsOwnedBy(technicianID uint) bool {
	return t.technicianID == technicianID
}

// Complete records the technician's completion submission and moves the
// ticket to awaiting_verification. Notes and images are set exactly once.
func (t *Ticket) Complete(notes string, images []string) error {
	if len(notes) == 0 {
		return fmt.Errorf("technician notes are required")
	}
	if len(notes) > 5000 {
		return fmt.Errorf("technician notes exceed maximum length of 5000 characters")
	}
	if !t.status.CanTransitionTo(vo.StatusAwaitingVerification) {
		return fmt.Errorf("cannot submit completion for ticket with status %s", t.status)
	}

	if images == nil {
		images = []string{}
	}

	now := time.Now()
	t.technicianNotes = notes
	t.images = images
	t.completedAt = &now
	t.status = vo.StatusAwaitingVerification
	t.updatedAt = now

	return nil
}

// Verify closes out the ticket. Done is terminal.
func (t *Ticket) Verify() error {
	if !t.status.CanTransitionTo(vo.StatusDone) {
		return fmt.Errorf("cannot verify ticket with status %s", t.status)
	}

	now := time.Now()
	t.verifiedAt = &now
	t.status = vo.StatusDone
	t.updatedAt = now

	return nil
}
