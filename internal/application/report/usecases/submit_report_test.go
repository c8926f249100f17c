package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/shared/authorization"
	"campusfix/internal/shared/errors"
)

func reporterSubmitCommand() SubmitReportCommand {
	return SubmitReportCommand{
		ReporterID:  10,
		Role:        authorization.RoleReporter,
		Title:       "Leaking pipe",
		Description: "Water pooling under the sink in the second floor restroom",
		Location:    "Building B, second floor restroom",
		Priority:    "high",
		Images:      []string{"https://cdn.example.com/leak.jpg"},
	}
}

func TestSubmitReportUseCase_Execute_Success(t *testing.T) {
	var saved *report.DamageReport
	draftCleared := false

	reportRepo := &mockReportRepository{
		SaveFunc: func(ctx context.Context, rep *report.DamageReport) error {
			saved = rep
			return rep.SetID(42)
		},
	}
	drafts := &mockDraftCleaner{
		ClearReportDraftFunc: func(ctx context.Context, userID uint) error {
			draftCleared = true
			assert.Equal(t, uint(10), userID)
			return nil
		},
	}

	uc := NewSubmitReportUseCase(reportRepo, drafts, &mockLogger{})
	result, err := uc.Execute(context.Background(), reporterSubmitCommand())

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.ReportID)
	assert.Equal(t, vo.StatusAwaiting.String(), result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, vo.StatusAwaiting, saved.Status())
	assert.Equal(t, vo.PriorityHigh, saved.Priority())
	assert.True(t, draftCleared)
}

func TestSubmitReportUseCase_Execute_StripsMarkup(t *testing.T) {
	var saved *report.DamageReport

	reportRepo := &mockReportRepository{
		SaveFunc: func(ctx context.Context, rep *report.DamageReport) error {
			saved = rep
			return rep.SetID(1)
		},
	}

	uc := NewSubmitReportUseCase(reportRepo, &mockDraftCleaner{}, &mockLogger{})

	cmd := reporterSubmitCommand()
	cmd.Title = "Leaking pipe <script>alert(1)</script>"
	cmd.Description = "<b>Water</b> everywhere"
	_, err := uc.Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "Leaking pipe", saved.Title())
	assert.Equal(t, "Water everywhere", saved.Description())
}

func TestSubmitReportUseCase_Execute_NonReporterForbidden(t *testing.T) {
	roles := []authorization.UserRole{authorization.RoleTechnician, authorization.RoleAdmin}

	for _, role := range roles {
		t.Run(role.String(), func(t *testing.T) {
			saves := 0
			reportRepo := &mockReportRepository{
				SaveFunc: func(ctx context.Context, rep *report.DamageReport) error {
					saves++
					return nil
				},
			}

			uc := NewSubmitReportUseCase(reportRepo, &mockDraftCleaner{}, &mockLogger{})

			cmd := reporterSubmitCommand()
			cmd.Role = role
			result, err := uc.Execute(context.Background(), cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsForbiddenError(err))
			assert.Zero(t, saves)
		})
	}
}

func TestSubmitReportUseCase_Execute_UnknownPriority(t *testing.T) {
	uc := NewSubmitReportUseCase(&mockReportRepository{}, &mockDraftCleaner{}, &mockLogger{})

	cmd := reporterSubmitCommand()
	cmd.Priority = "urgent"
	result, err := uc.Execute(context.Background(), cmd)

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubmitReportUseCase_Execute_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *SubmitReportCommand)
	}{
		{"empty title", func(cmd *SubmitReportCommand) { cmd.Title = "" }},
		{"empty description", func(cmd *SubmitReportCommand) { cmd.Description = "" }},
		{"empty location", func(cmd *SubmitReportCommand) { cmd.Location = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSubmitReportUseCase(&mockReportRepository{}, &mockDraftCleaner{}, &mockLogger{})

			cmd := reporterSubmitCommand()
			tt.mutate(&cmd)
			result, err := uc.Execute(context.Background(), cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestSubmitReportUseCase_Execute_DraftClearFailureIsNotFatal(t *testing.T) {
	drafts := &mockDraftCleaner{
		ClearReportDraftFunc: func(ctx context.Context, userID uint) error {
			return errors.NewInternalError("redis unavailable")
		},
	}

	uc := NewSubmitReportUseCase(&mockReportRepository{}, drafts, &mockLogger{})
	result, err := uc.Execute(context.Background(), reporterSubmitCommand())

	require.NoError(t, err)
	assert.NotNil(t, result)
}
