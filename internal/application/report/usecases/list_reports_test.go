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

func TestListReportsUseCase_Execute_ReporterScopedToOwn(t *testing.T) {
	rep := reconstructReport(t, vo.StatusAwaiting)

	var gotFilter report.Filter
	reportRepo := &mockReportRepository{
		ListFunc: func(ctx context.Context, filter report.Filter) ([]*report.DamageReport, int64, error) {
			gotFilter = filter
			return []*report.DamageReport{rep}, 1, nil
		},
	}

	uc := NewListReportsUseCase(reportRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListReportsQuery{
		UserID: 10,
		Role:   authorization.RoleReporter,
	})

	require.NoError(t, err)
	require.Len(t, result.Reports, 1)
	assert.Equal(t, int64(1), result.Total)

	require.NotNil(t, gotFilter.ReporterID)
	assert.Equal(t, uint(10), *gotFilter.ReporterID)
}

func TestListReportsUseCase_Execute_AdminSeesAll(t *testing.T) {
	var gotFilter report.Filter
	reportRepo := &mockReportRepository{
		ListFunc: func(ctx context.Context, filter report.Filter) ([]*report.DamageReport, int64, error) {
			gotFilter = filter
			return nil, 0, nil
		},
	}

	uc := NewListReportsUseCase(reportRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListReportsQuery{
		UserID: 30,
		Role:   authorization.RoleAdmin,
		Status: "awaiting",
	})

	require.NoError(t, err)
	assert.Nil(t, gotFilter.ReporterID)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, vo.StatusAwaiting, *gotFilter.Status)
}

func TestListReportsUseCase_Execute_UnknownStatusRejected(t *testing.T) {
	uc := NewListReportsUseCase(&mockReportRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListReportsQuery{
		UserID: 30,
		Role:   authorization.RoleAdmin,
		Status: "pending",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestListReportsUseCase_Execute_TechnicianForbidden(t *testing.T) {
	uc := NewListReportsUseCase(&mockReportRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListReportsQuery{
		UserID: 20,
		Role:   authorization.RoleTechnician,
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
}
