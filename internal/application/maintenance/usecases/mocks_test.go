package usecases

import (
	"context"

	"campusfix/internal/domain/maintenance"
	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
	"campusfix/internal/domain/user"
	"campusfix/internal/shared/logger"
)

type mockReportRepository struct {
	SaveFunc           func(ctx context.Context, rep *report.DamageReport) error
	GetByIDFunc        func(ctx context.Context, reportID uint) (*report.DamageReport, error)
	ListFunc           func(ctx context.Context, filter report.Filter) ([]*report.DamageReport, int64, error)
	UpdateStatusIfFunc func(ctx context.Context, rep *report.DamageReport, expected vo.Status) (bool, error)
}

func (m *mockReportRepository) Save(ctx context.Context, rep *report.DamageReport) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rep)
	}
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, reportID uint) (*report.DamageReport, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, reportID)
	}
	return nil, nil
}

func (m *mockReportRepository) List(ctx context.Context, filter report.Filter) ([]*report.DamageReport, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockReportRepository) UpdateStatusIf(ctx context.Context, rep *report.DamageReport, expected vo.Status) (bool, error) {
	if m.UpdateStatusIfFunc != nil {
		return m.UpdateStatusIfFunc(ctx, rep, expected)
	}
	return true, nil
}

type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, t *maintenance.Ticket) error
	GetByIDFunc              func(ctx context.Context, ticketID uint) (*maintenance.Ticket, error)
	GetByReportIDFunc        func(ctx context.Context, damageReportID uint) (*maintenance.Ticket, error)
	GetTechnicianTicketsFunc func(ctx context.Context, technicianID uint, filter maintenance.Filter) ([]*maintenance.Ticket, int64, error)
	UpdateStatusIfFunc       func(ctx context.Context, t *maintenance.Ticket, expected vo.Status) (bool, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *maintenance.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*maintenance.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByReportID(ctx context.Context, damageReportID uint) (*maintenance.Ticket, error) {
	if m.GetByReportIDFunc != nil {
		return m.GetByReportIDFunc(ctx, damageReportID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetTechnicianTickets(ctx context.Context, technicianID uint, filter maintenance.Filter) ([]*maintenance.Ticket, int64, error) {
	if m.GetTechnicianTicketsFunc != nil {
		return m.GetTechnicianTicketsFunc(ctx, technicianID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) UpdateStatusIf(ctx context.Context, t *maintenance.Ticket, expected vo.Status) (bool, error) {
	if m.UpdateStatusIfFunc != nil {
		return m.UpdateStatusIfFunc(ctx, t, expected)
	}
	return true, nil
}

type mockUserRepository struct {
	SaveFunc            func(ctx context.Context, u *user.User) error
	GetByIDFunc         func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*user.User, error)
	ListTechniciansFunc func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListTechnicians(ctx context.Context) ([]*user.User, error) {
	if m.ListTechniciansFunc != nil {
		return m.ListTechniciansFunc(ctx)
	}
	return nil, nil
}

// mockTxManager runs the callback inline so the mocks observe every call the
// real transaction would carry.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockDraftCleaner struct {
	ClearMaintenanceDraftFunc func(ctx context.Context, userID, ticketID uint) error
}

func (m *mockDraftCleaner) ClearMaintenanceDraft(ctx context.Context, userID, ticketID uint) error {
	if m.ClearMaintenanceDraftFunc != nil {
		return m.ClearMaintenanceDraftFunc(ctx, userID, ticketID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
