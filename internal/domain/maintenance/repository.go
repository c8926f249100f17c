package maintenance

import (
	"context"

	vo "campusfix/internal/domain/report/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByReportID(ctx context.Context, damageReportID uint) (*Ticket, error)
	GetTechnicianTickets(ctx context.Context, technicianID uint, filter Filter) ([]*Ticket, int64, error)

	// UpdateStatusIf persists the ticket's pending field changes with a
	// conditional write guarded on the stored status still being expected.
	// Returns false when a concurrent transition already moved the ticket.
	UpdateStatusIf(ctx context.Context, t *Ticket, expected vo.Status) (bool, error)
}

type Filter struct {
	Status    *vo.Status
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
