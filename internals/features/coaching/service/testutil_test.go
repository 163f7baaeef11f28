package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	aiModel "sportan_backend/internals/features/ai/model"
	"sportan_backend/internals/features/coaching/model"
	identityModel "sportan_backend/internals/features/identity/model"
	trainingModel "sportan_backend/internals/features/training/model"
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
		&model.GroupModel{},
		&model.GroupAthleteModel{},
		&trainingModel.AssignedWorkoutModel{},
		&trainingModel.WorkoutModel{},
		&aiModel.TalentReportModel{},
		&aiModel.WeeklyInsightModel{},
	))
	return db
}

func seedCoach(t *testing.T, db *gorm.DB, email string) identityModel.CoachModel {
	t.Helper()
	coach := identityModel.CoachModel{CoachEmail: email, CoachFullName: "Coach " + email}
	require.NoError(t, db.Create(&coach).Error)
	return coach
}

func seedGroup(t *testing.T, db *gorm.DB, coach identityModel.CoachModel, name string) model.GroupModel {
	t.Helper()
	group := model.GroupModel{GroupCoachID: coach.CoachID, GroupName: name}
	require.NoError(t, db.Create(&group).Error)
	return group
}

func seedAthleteInGroup(t *testing.T, db *gorm.DB, coach identityModel.CoachModel, group model.GroupModel, name string) identityModel.AthleteModel {
	t.Helper()
	athlete := identityModel.AthleteModel{AthleteCoachID: coach.CoachID, AthleteFullName: name}
	require.NoError(t, db.Create(&athlete).Error)
	require.NoError(t, db.Create(&model.GroupAthleteModel{
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
