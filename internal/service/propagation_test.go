package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Appointment{},
		&models.User{},
		&models.Violation{},
		&models.Incident{},
		&models.Session{},
		&models.ActivityLog{},
	))
	return db
}

func seedPropagationViolations(t *testing.T, db *gorm.DB) {
	t.Helper()
	violations := []models.Violation{
		{StudentID: 1, StudentName: "Alice Johnson", StudentLRN: "111111111111", ViolationType: "Tardiness", Date: "2025-03-05", Status: "Pending"},
		{StudentID: 2, StudentName: "Bob Stone", StudentLRN: "222222222222", ViolationType: "Fighting", Date: "2025-03-05", Status: "Pending"},
		{StudentID: 1, StudentName: "Alice Johnson", StudentLRN: "111111111111", ViolationType: "Dress Code", Date: "2025-03-01", Status: "Pending"},
	}
	for i := range violations {
		require.NoError(t, db.Create(&violations[i]).Error)
	}
}

func violationStatuses(t *testing.T, db *gorm.DB) map[uint]string {
	t.Helper()
	var violations []models.Violation
	require.NoError(t, db.Find(&violations).Error)
	statuses := make(map[uint]string, len(violations))
	for _, v := range violations {
		statuses[v.ID] = v.Status
	}
	return statuses
}

type failingViolationRepo struct {
	repository.ViolationRepository
}

func (failingViolationRepo) UpdateStatusByLRNDate(context.Context, []string, string, string) (int64, error) {
	return 0, errors.New("database unavailable")
}

func TestPropagatorFromIncidentUpdatesMatchingViolations(t *testing.T) {
	db := setupServiceDB(t)
	seedPropagationViolations(t, db)

	violationRepo := repository.NewViolationRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	propagator := NewStatusPropagator(violationRepo, activityRepo, testLogger())

	incident := models.Incident{ID: 10, ReportedByLRN: "111111111111", Date: "2025-03-05", Status: "Resolved"}
	propagator.FromIncident(context.Background(), incident)

	statuses := violationStatuses(t, db)
	require.Equal(t, "Resolved", statuses[1])
	require.Equal(t, "Pending", statuses[2], "other students must not change")
	require.Equal(t, "Pending", statuses[3], "other dates must not change")

	entries, err := activityRepo.ListByAction(context.Background(), ActionStatusPropagated, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "incident", entries[0].EntityType)
	require.NotNil(t, entries[0].EntityID)
	require.Equal(t, uint(10), *entries[0].EntityID)
}

func TestPropagatorFromIncidentSkipsWhenFieldsMissing(t *testing.T) {
	db := setupServiceDB(t)
	seedPropagationViolations(t, db)

	violationRepo := repository.NewViolationRepository(db)
	propagator := NewStatusPropagator(violationRepo, nil, testLogger())

	propagator.FromIncident(context.Background(), models.Incident{Date: "2025-03-05", Status: "Resolved"})
	propagator.FromIncident(context.Background(), models.Incident{ReportedByLRN: "111111111111", Status: "Resolved"})
	propagator.FromIncident(context.Background(), models.Incident{ReportedByLRN: "111111111111", Date: "2025-03-05"})

	for id, status := range violationStatuses(t, db) {
		require.Equal(t, "Pending", status, "violation %d must stay untouched", id)
	}
}

func TestPropagatorFromSessionUpdatesByParticipantLRNs(t *testing.T) {
	db := setupServiceDB(t)
	seedPropagationViolations(t, db)

	violationRepo := repository.NewViolationRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	propagator := NewStatusPropagator(violationRepo, activityRepo, testLogger())

	session := models.Session{
		ID:     3,
		Date:   "2025-03-05",
		Status: "Completed",
		Participants: models.EncodeParticipants([]models.Participant{
			{ID: float64(1), LRN: "111111111111", Name: "Alice"},
			{LRN: "222222222222"},
			{LRN: "111111111111"},
		}),
	}
	propagator.FromSession(context.Background(), session)

	statuses := violationStatuses(t, db)
	require.Equal(t, "Completed", statuses[1])
	require.Equal(t, "Completed", statuses[2])
	require.Equal(t, "Pending", statuses[3], "other dates must not change")

	entries, err := activityRepo.ListByAction(context.Background(), ActionStatusPropagated, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "session", entries[0].EntityType)
}

func TestPropagatorFromSessionIgnoresIDOnlyParticipants(t *testing.T) {
	db := setupServiceDB(t)
	seedPropagationViolations(t, db)

	violationRepo := repository.NewViolationRepository(db)
	propagator := NewStatusPropagator(violationRepo, nil, testLogger())

	session := models.Session{
		Date:   "2025-03-05",
		Status: "Completed",
		Participants: models.EncodeParticipants([]models.Participant{
			{ID: float64(1), Name: "Alice"},
			{ID: "2"},
		}),
	}
	propagator.FromSession(context.Background(), session)

	for id, status := range violationStatuses(t, db) {
		require.Equal(t, "Pending", status, "violation %d must stay untouched", id)
	}
}

func TestPropagatorFailureDoesNotPanicAndIsRecorded(t *testing.T) {
	db := setupServiceDB(t)

	activityRepo := repository.NewActivityLogRepository(db)
	propagator := NewStatusPropagator(failingViolationRepo{}, activityRepo, testLogger())

	incident := models.Incident{ID: 7, ReportedByLRN: "111111111111", Date: "2025-03-05", Status: "Resolved"}
	propagator.FromIncident(context.Background(), incident)

	entries, err := activityRepo.ListByAction(context.Background(), ActionStatusPropagationFailed, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "incident", entries[0].EntityType)
}

func TestCollectParticipantKeys(t *testing.T) {
	lrns, ids := collectParticipantKeys([]models.Participant{
		{ID: float64(3), LRN: "222222222222"},
		{ID: "1", LRN: "111111111111"},
		{ID: "not-a-number", LRN: "111111111111"},
		{Name: "no identifiers"},
	})

	require.Equal(t, []string{"111111111111", "222222222222"}, lrns)
	require.Equal(t, []uint{1, 3}, ids)
}
