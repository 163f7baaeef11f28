package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sportan_backend/internals/features/ai/model"
	coachingModel "sportan_backend/internals/features/coaching/model"
	identityModel "sportan_backend/internals/features/identity/model"
	trainingModel "sportan_backend/internals/features/training/model"
)

type stubGen struct {
	text  string
	err   error
	calls int
}

func (s *stubGen) Generate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&identityModel.CoachModel{},
		&identityModel.AthleteModel{},
		&coachingModel.GroupModel{},
		&coachingModel.GroupAthleteModel{},
		&trainingModel.AssignedWorkoutModel{},
		&trainingModel.WorkoutModel{},
		&model.TalentReportModel{},
		&model.WeeklyInsightModel{},
	))
	return db
}

func seedAthlete(t *testing.T, db *gorm.DB) (identityModel.CoachModel, identityModel.AthleteModel) {
	t.Helper()
	coach := identityModel.CoachModel{CoachEmail: "c@test.dev", CoachFullName: "Coach"}
	require.NoError(t, db.Create(&coach).Error)
	athlete := identityModel.AthleteModel{AthleteCoachID: coach.CoachID, AthleteFullName: "Mia"}
	require.NoError(t, db.Create(&athlete).Error)
	return coach, athlete
}

func seedWorkout(t *testing.T, db *gorm.DB, athlete identityModel.AthleteModel, date time.Time, title string) {
	t.Helper()
	require.NoError(t, db.Create(&trainingModel.WorkoutModel{
		WorkoutAthleteID: athlete.AthleteID,
		WorkoutDate:      date,
		WorkoutTitle:     title,
	}).Error)
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestGenerateTalentReport(t *testing.T) {
	db := newTestDB(t)
	coach, athlete := seedAthlete(t, db)
	seedWorkout(t, db, athlete, time.Now().UTC(), "Sprints")

	gen := &stubGen{text: "Shows real promise."}
	svc := NewReportService(db, gen)

	report, err := svc.GenerateTalentReport(context.Background(), athlete.AthleteID, coach.CoachID)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Shows real promise.", report.TalentReportText)

	latest, err := svc.GetLatestTalentReport(athlete.AthleteID)
	require.NoError(t, err)
	assert.Equal(t, report.TalentReportID, latest.TalentReportID)
}

func TestGenerateTalentReportProviderError(t *testing.T) {
	db := newTestDB(t)
	coach, athlete := seedAthlete(t, db)

	svc := NewReportService(db, &stubGen{err: errors.New("quota exceeded")})

	_, err := svc.GenerateTalentReport(context.Background(), athlete.AthleteID, coach.CoachID)
	assert.Equal(t, fiber.StatusBadGateway, fiberCode(t, err))

	_, err = svc.GetLatestTalentReport(athlete.AthleteID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestGenerateTalentReportEmptyResponse(t *testing.T) {
	db := newTestDB(t)
	coach, athlete := seedAthlete(t, db)

	svc := NewReportService(db, &stubGen{text: "   "})

	_, err := svc.GenerateTalentReport(context.Background(), athlete.AthleteID, coach.CoachID)
	assert.Equal(t, fiber.StatusBadGateway, fiberCode(t, err))
}

func TestGenerateTalentReportForeignAthlete(t *testing.T) {
	db := newTestDB(t)
	_, athlete := seedAthlete(t, db)
	other := identityModel.CoachModel{CoachEmail: "o@test.dev", CoachFullName: "Other"}
	require.NoError(t, db.Create(&other).Error)

	gen := &stubGen{text: "should never be asked"}
	svc := NewReportService(db, gen)

	_, err := svc.GenerateTalentReport(context.Background(), athlete.AthleteID, other.CoachID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateWeeklyInsightsNoData(t *testing.T) {
	db := newTestDB(t)
	coach, athlete := seedAthlete(t, db)

	// only old data, outside the 7-day window
	seedWorkout(t, db, athlete, time.Now().UTC().AddDate(0, 0, -30), "Ancient run")

	gen := &stubGen{text: "should never be asked"}
	svc := NewReportService(db, gen)

	insight, err := svc.GenerateWeeklyInsights(context.Background(), athlete.AthleteID, coach.CoachID)
	require.NoError(t, err)
	assert.Equal(t, noWeeklyDataText, insight.WeeklyInsightText)
	assert.Equal(t, 0, gen.calls)

	latest, err := svc.GetLatestWeeklyInsight(athlete.AthleteID)
	require.NoError(t, err)
	assert.Equal(t, insight.WeeklyInsightID, latest.WeeklyInsightID)
}

func TestGenerateWeeklyInsightsWithData(t *testing.T) {
	db := newTestDB(t)
	coach, athlete := seedAthlete(t, db)
	seedWorkout(t, db, athlete, time.Now().UTC().AddDate(0, 0, -2), "Tempo run")

	gen := &stubGen{text: "Solid week of training."}
	svc := NewReportService(db, gen)

	insight, err := svc.GenerateWeeklyInsights(context.Background(), athlete.AthleteID, coach.CoachID)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Solid week of training.", insight.WeeklyInsightText)
}

func TestGenerateWeeklyInsightsBoundaryInclusive(t *testing.T) {
	db := newTestDB(t)
	coach, athlete := seedAthlete(t, db)

	// dated exactly seven days back at midnight UTC, the oldest day still in
	// the window
	now := time.Now().UTC()
	boundary := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7)
	seedWorkout(t, db, athlete, boundary, "Edge run")

	gen := &stubGen{text: "One run this week."}
	svc := NewReportService(db, gen)

	insight, err := svc.GenerateWeeklyInsights(context.Background(), athlete.AthleteID, coach.CoachID)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "One run this week.", insight.WeeklyInsightText)
}

func TestLatestReportWinsByCreatedAt(t *testing.T) {
	db := newTestDB(t)
	_, athlete := seedAthlete(t, db)

	older := model.TalentReportModel{
		TalentReportAthleteID: athlete.AthleteID,
		TalentReportText:      "old",
		TalentReportCreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	newer := model.TalentReportModel{
		TalentReportAthleteID: athlete.AthleteID,
		TalentReportText:      "new",
		TalentReportCreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	svc := NewReportService(db, &stubGen{})
	latest, err := svc.GetLatestTalentReport(athlete.AthleteID)
	require.NoError(t, err)
	assert.Equal(t, "new", latest.TalentReportText)
}
