package usecases

import (
	"context"

	"campusfix/internal/application/maintenance/dto"
)

type AssignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error)
}

type SubmitCompletionExecutor interface {
	Execute(ctx context.Context, cmd SubmitCompletionCommand) (*SubmitCompletionResult, error)
}

type VerifyCompletionExecutor interface {
	Execute(ctx context.Context, cmd VerifyCompletionCommand) (*VerifyCompletionResult, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}

type GetTaskExecutor interface {
	Execute(ctx context.Context, query GetTaskQuery) (*dto.TicketDTO, error)
}

// transactionManager runs a function inside a database transaction; the
// callback's context carries the transaction for repository calls.
type transactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// maintenanceDraftCleaner discards a technician's saved draft once the real
// completion has been submitted.
type maintenanceDraftCleaner interface {
	ClearMaintenanceDraft(ctx context.Context, userID, ticketID uint) error
}
