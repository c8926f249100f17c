package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfix/internal/domain/maintenance"
	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
)

func technicianCompletionCommand() SubmitCompletionCommand {
	return SubmitCompletionCommand{
		TicketID:     testTicketID,
		TechnicianID: testTechnicianID,
		Role:         authorization.RoleTechnician,
		Notes:        "Replaced the glass pane and resealed the frame",
		Images:       []string{"https://cdn.example.com/fixed.jpg"},
	}
}

func TestSubmitCompletionUseCase_Execute_Success(t *testing.T) {
	ticket := testTicket(t, vo.StatusInProgress)
	rep := testReport(t, vo.StatusInProgress)

	var ticketExpected, reportExpected vo.Status
	draftCleared := false

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return ticket, nil
		},
		UpdateStatusIfFunc: func(ctx context.Context, tk *maintenance.Ticket, expected vo.Status) (bool, error) {
			ticketExpected = expected
			return true, nil
		},
	}
	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, reportID uint) (*report.DamageReport, error) {
			assert.Equal(t, testReportID, reportID)
			return rep, nil
		},
		UpdateStatusIfFunc: func(ctx context.Context, r *report.DamageReport, expected vo.Status) (bool, error) {
			reportExpected = expected
			return true, nil
		},
	}
	drafts := &mockDraftCleaner{
		ClearMaintenanceDraftFunc: func(ctx context.Context, userID, ticketID uint) error {
			draftCleared = true
			assert.Equal(t, testTechnicianID, userID)
			assert.Equal(t, testTicketID, ticketID)
			return nil
		},
	}

	uc := NewSubmitCompletionUseCase(reportRepo, ticketRepo, &mockTxManager{}, drafts, &mockLogger{})
	result, err := uc.Execute(context.Background(), technicianCompletionCommand())

	require.NoError(t, err)
	assert.Equal(t, vo.StatusAwaitingVerification.String(), result.Status)
	require.NotNil(t, result.CompletedAt)

	assert.Equal(t, vo.StatusAwaitingVerification, ticket.Status())
	assert.Equal(t, vo.StatusAwaitingVerification, rep.Status())
	assert.Equal(t, vo.StatusInProgress, ticketExpected)
	assert.Equal(t, vo.StatusInProgress, reportExpected)
	assert.True(t, draftCleared)
}

func TestSubmitCompletionUseCase_Execute_NotOwnerForbidden(t *testing.T) {
	ticket := testTicket(t, vo.StatusInProgress)

	updates := 0
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return ticket, nil
		},
		UpdateStatusIfFunc: func(ctx context.Context, tk *maintenance.Ticket, expected vo.Status) (bool, error) {
			updates++
			return true, nil
		},
	}

	uc := NewSubmitCompletionUseCase(
		&mockReportRepository{}, ticketRepo, &mockTxManager{}, &mockDraftCleaner{}, &mockLogger{})

	cmd := technicianCompletionCommand()
	cmd.TechnicianID = testTechnicianID + 1
	result, err := uc.Execute(context.Background(), cmd)

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Zero(t, updates)
	assert.Equal(t, vo.StatusInProgress, ticket.Status())
}

func TestSubmitCompletionUseCase_Execute_NonTechnicianForbidden(t *testing.T) {
	roles := []authorization.UserRole{authorization.RoleReporter, authorization.RoleAdmin}

	for _, role := range roles {
		t.Run(role.String(), func(t *testing.T) {
			uc := NewSubmitCompletionUseCase(
				&mockReportRepository{}, &mockTicketRepository{}, &mockTxManager{}, &mockDraftCleaner{}, &mockLogger{})

			cmd := technicianCompletionCommand()
			cmd.Role = role
			result, err := uc.Execute(context.Background(), cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
		})
	}
}

func TestSubmitCompletionUseCase_Execute_TicketNotInProgress(t *testing.T) {
	statuses := []vo.Status{vo.StatusAwaitingVerification, vo.StatusDone}

	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			ticket := testTicket(t, status)

			ticketRepo := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
					return ticket, nil
				},
			}

			uc := NewSubmitCompletionUseCase(
				&mockReportRepository{}, ticketRepo, &mockTxManager{}, &mockDraftCleaner{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), technicianCompletionCommand())

			assert.Nil(t, result)
			assert.True(t, errors.IsInvalidStateError(err))
			assert.Equal(t, status, ticket.Status())
		})
	}
}

func TestSubmitCompletionUseCase_Execute_EmptyNotes(t *testing.T) {
	ticket := testTicket(t, vo.StatusInProgress)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return ticket, nil
		},
	}

	uc := NewSubmitCompletionUseCase(
		&mockReportRepository{}, ticketRepo, &mockTxManager{}, &mockDraftCleaner{}, &mockLogger{})

	cmd := technicianCompletionCommand()
	cmd.Notes = "   "
	result, err := uc.Execute(context.Background(), cmd)

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitCompletionUseCase_Execute_ConcurrentTicketUpdate(t *testing.T) {
	ticket := testTicket(t, vo.StatusInProgress)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return ticket, nil
		},
		UpdateStatusIfFunc: func(ctx context.Context, tk *maintenance.Ticket, expected vo.Status) (bool, error) {
			return false, nil
		},
	}

	uc := NewSubmitCompletionUseCase(
		&mockReportRepository{}, ticketRepo, &mockTxManager{}, &mockDraftCleaner{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), technicianCompletionCommand())

	assert.Nil(t, result)
	assert.True(t, errors.IsInvalidStateError(err))
}

func TestSubmitCompletionUseCase_Execute_DraftClearFailureIsNotFatal(t *testing.T) {
	ticket := testTicket(t, vo.StatusInProgress)
	rep := testReport(t, vo.StatusInProgress)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
			return ticket, nil
		},
	}
	reportRepo := &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, reportID uint) (*report.DamageReport, error) {
			return rep, nil
		},
	}
	drafts := &mockDraftCleaner{
		ClearMaintenanceDraftFunc: func(ctx context.Context, userID, ticketID uint) error {
			return errors.NewInternalError("redis unavailable")
		},
	}

	uc := NewSubmitCompletionUseCase(reportRepo, ticketRepo, &mockTxManager{}, drafts, &mockLogger{})
	result, err := uc.Execute(context.Background(), technicianCompletionCommand())

	require.NoError(t, err)
	assert.Equal(t, vo.StatusAwaitingVerification.String(), result.Status)
}
