package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobpilot/jobpilot/internal/models"
	"github.com/jobpilot/jobpilot/internal/sprintgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var sprintColumns = []string{
	"id", "created_at", "updated_at", "application_id",
	"interview_date", "role_type", "total_days", "status", "plans_json",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: mockDB,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestCreateForApplicationReturnsExistingSprint(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSprintService(db)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	interview := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	existing := sprintgen.Generate("42", interview, sprintgen.RoleSDE, now)
	plans, err := json.Marshal(existing.DailyPlans)
	require.NoError(t, err)

	// Only the lookup may run. A regeneration for the same pair would
	// surface as an unexpected INSERT.
	mock.ExpectQuery(`SELECT \* FROM "sprints" WHERE application_id`).
		WillReturnRows(sqlmock.NewRows(sprintColumns).AddRow(
			existing.ID, now, now, 42, interview, "SDE",
			existing.TotalDays, "active", string(plans),
		))

	app := &models.Application{ID: 42, Role: "SDE2"}
	got, err := svc.CreateForApplication(app, interview, "", now)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, existing.TotalDays, got.TotalDays)
	assert.Len(t, got.DailyPlans, existing.TotalDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateForApplicationInsertsWhenMissing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSprintService(db)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	interview := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "sprints" WHERE application_id`).
		WillReturnRows(sqlmock.NewRows(sprintColumns))
	mock.ExpectExec(`INSERT INTO "sprints"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := &models.Application{ID: 42, Role: "SDE2"}
	got, err := svc.CreateForApplication(app, interview, "", now)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, sprintgen.StatusActive, got.Status)
	assert.Equal(t, 10, got.TotalDays)
	assert.Len(t, got.DailyPlans, 10)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireOverdue(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSprintService(db)

	mock.ExpectExec(`UPDATE "sprints" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	swept, err := svc.ExpireOverdue(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.EqualValues(t, 3, swept)
	assert.NoError(t, mock.ExpectationsWereMet())
}
