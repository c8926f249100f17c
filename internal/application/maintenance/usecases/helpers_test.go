package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusfix/internal/domain/maintenance"
	"campusfix/internal/domain/report"
	vo "campusfix/internal/domain/report/valueobjects"
)

const (
	testReportID     = uint(1)
	testTicketID     = uint(7)
	testReporterID   = uint(10)
	testTechnicianID = uint(20)
	testAdminID      = uint(30)
)

func testReport(t *testing.T, status vo.Status) *report.DamageReport {
	t.Helper()

	rep, err := report.ReconstructDamageReport(
		testReportID,
		testReporterID,
		"Broken window",
		"The window in room 204 shattered during the storm",
		"Building A, room 204",
		vo.PriorityMedium,
		[]string{"https://cdn.example.com/window.jpg"},
		status,
		time.Now().Add(-2*time.Hour),
		time.Now().Add(-1*time.Hour),
	)
	require.NoError(t, err)

	return rep
}

func testTicket(t *testing.T, status vo.Status) *maintenance.Ticket {
	t.Helper()

	var notes string
	var completedAt, verifiedAt *time.Time
	if status == vo.StatusAwaitingVerification || status == vo.StatusDone {
		notes = "Replaced the glass pane"
		done := time.Now().Add(-30 * time.Minute)
		completedAt = &done
	}
	if status == vo.StatusDone {
		verified := time.Now().Add(-10 * time.Minute)
		verifiedAt = &verified
	}

	ticket, err := maintenance.ReconstructTicket(
		testTicketID,
		testReportID,
		testTechnicianID,
		status,
		notes,
		nil,
		completedAt,
		verifiedAt,
		time.Now().Add(-1*time.Hour),
		time.Now().Add(-1*time.Hour),
	)
	require.NoError(t, err)

	return ticket
}
