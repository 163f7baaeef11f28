package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	aiModel "sportan_backend/internals/features/ai/model"
	coachingModel "sportan_backend/internals/features/coaching/model"
	identityModel "sportan_backend/internals/features/identity/model"
	"sportan_backend/internals/features/training/model"
)

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
		&identityModel.ParentModel{},
		&coachingModel.GroupModel{},
		&coachingModel.GroupAthleteModel{},
		&model.AssignedWorkoutModel{},
		&model.WorkoutModel{},
		&aiModel.TalentReportModel{},
		&aiModel.WeeklyInsightModel{},
	))
	return db
}

type fixture struct {
	coach   identityModel.CoachModel
	group   coachingModel.GroupModel
	athlete identityModel.AthleteModel
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	coach := identityModel.CoachModel{CoachEmail: "coach@test.dev", CoachFullName: "Coach"}
	require.NoError(t, db.Create(&coach).Error)
	group := coachingModel.GroupModel{GroupCoachID: coach.CoachID, GroupName: "U15"}
	require.NoError(t, db.Create(&group).Error)
	athlete := seedMember(t, db, coach, group, "Mia")
	return fixture{coach: coach, group: group, athlete: athlete}
}

func seedCoach(t *testing.T, db *gorm.DB, email string) identityModel.CoachModel {
	t.Helper()
	coach := identityModel.CoachModel{CoachEmail: email, CoachFullName: "Coach"}
	require.NoError(t, db.Create(&coach).Error)
	return coach
}

func seedMember(t *testing.T, db *gorm.DB, coach identityModel.CoachModel, group coachingModel.GroupModel, name string) identityModel.AthleteModel {
	t.Helper()
	athlete := identityModel.AthleteModel{AthleteCoachID: coach.CoachID, AthleteFullName: name}
	require.NoError(t, db.Create(&athlete).Error)
	require.NoError(t, db.Create(&coachingModel.GroupAthleteModel{
		GroupAthleteGroupID:   group.GroupID,
		GroupAthleteAthleteID: athlete.AthleteID,
	}).Error)
	return athlete
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}
