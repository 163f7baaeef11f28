package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportan_backend/internals/features/training/dto"
	"sportan_backend/internals/features/training/model"
)

func tomorrow() string {
	return time.Now().UTC().AddDate(0, 0, 1).Format(dateLayout)
}

func TestCreateAssignmentForGroupFansOut(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	second := seedMember(t, db, f.coach, f.group, "Noa")

	assignments, err := CreateAssignmentForGroup(db, f.group.GroupID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: tomorrow(),
	})
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	got := map[string]bool{}
	for _, a := range assignments {
		got[a.AssignedWorkoutAthleteID.String()] = true
		assert.Equal(t, model.StatusPending, a.AssignedWorkoutStatus)
		assert.Equal(t, "Intervals", a.AssignedWorkoutTitle)
	}
	assert.True(t, got[f.athlete.AthleteID.String()])
	assert.True(t, got[second.AthleteID.String()])
}

func TestCreateAssignmentForEmptyGroup(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	// strip the memberships so the fan-out has nobody to hit
	require.NoError(t, db.Exec("DELETE FROM group_athletes").Error)

	assignments, err := CreateAssignmentForGroup(db, f.group.GroupID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: tomorrow(),
	})
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestCreateAssignmentForeignGroup(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	_, err := CreateAssignmentForGroup(db, f.group.GroupID, f.athlete.AthleteID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: tomorrow(),
	})
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdateAssignmentStatus(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	assignment, err := CreateAssignmentForAthlete(db, f.athlete.AthleteID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Tempo run",
		ScheduledDate: tomorrow(),
	})
	require.NoError(t, err)

	updated, err := UpdateAssignmentStatus(db, assignment.AssignedWorkoutID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.AssignedWorkoutStatus)

	_, err = UpdateAssignmentStatus(db, assignment.AssignedWorkoutID, model.WorkoutStatus("nonsense"))
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestUpdateSkippedAssignments(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	today := time.Now().UTC()

	overdue := model.AssignedWorkoutModel{
		AssignedWorkoutAthleteID:     f.athlete.AthleteID,
		AssignedWorkoutScheduledDate: yesterday,
		AssignedWorkoutTitle:         "Overdue",
	}
	current := model.AssignedWorkoutModel{
		AssignedWorkoutAthleteID:     f.athlete.AthleteID,
		AssignedWorkoutScheduledDate: today,
		AssignedWorkoutTitle:         "Today",
	}
	done := model.AssignedWorkoutModel{
		AssignedWorkoutAthleteID:     f.athlete.AthleteID,
		AssignedWorkoutScheduledDate: yesterday,
		AssignedWorkoutTitle:         "Done",
		AssignedWorkoutStatus:        model.StatusCompleted,
	}
	require.NoError(t, db.Create(&overdue).Error)
	require.NoError(t, db.Create(&current).Error)
	require.NoError(t, db.Create(&done).Error)

	n, err := UpdateSkippedAssignments(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := GetAssignment(db, overdue.AssignedWorkoutID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSkipped, got.AssignedWorkoutStatus)

	got, err = GetAssignment(db, current.AssignedWorkoutID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, got.AssignedWorkoutStatus)

	got, err = GetAssignment(db, done.AssignedWorkoutID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.AssignedWorkoutStatus)

	// re-run finds nothing left to flip
	n, err = UpdateSkippedAssignments(db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
