package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"sportan_backend/internals/features/training/dto"
	"sportan_backend/internals/features/training/model"
)

func todayStr() string {
	return time.Now().UTC().Format(dateLayout)
}

func TestLogWorkoutCompletesAssignment(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	assignment, err := CreateAssignmentForAthlete(db, f.athlete.AthleteID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: todayStr(),
	})
	require.NoError(t, err)

	id := assignment.AssignedWorkoutID.String()
	workout, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID:         f.athlete.AthleteID.String(),
		Title:             "Intervals done",
		Date:              todayStr(),
		Metrics:           datatypes.JSONMap{"distance_km": 5.2},
		AssignedWorkoutID: &id,
	})
	require.NoError(t, err)
	require.NotNil(t, workout.WorkoutAssignedWorkoutID)

	got, err := GetAssignment(db, assignment.AssignedWorkoutID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.AssignedWorkoutStatus)
}

func TestLogWorkoutForeignAthleteRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	rival := seedCoach(t, db, "rival@test.dev")

	_, err := LogWorkout(db, rival.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Not yours",
		Date:      todayStr(),
	})
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestLogWorkoutForeignAssignmentRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	other := seedMember(t, db, f.coach, f.group, "Noa")

	assignment, err := CreateAssignmentForAthlete(db, other.AthleteID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: todayStr(),
	})
	require.NoError(t, err)

	id := assignment.AssignedWorkoutID.String()
	_, err = LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID:         f.athlete.AthleteID.String(),
		Title:             "Sneaky",
		Date:              todayStr(),
		AssignedWorkoutID: &id,
	})
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestLogWorkoutDoubleCompletionConflicts(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	assignment, err := CreateAssignmentForAthlete(db, f.athlete.AthleteID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: todayStr(),
	})
	require.NoError(t, err)

	id := assignment.AssignedWorkoutID.String()
	_, err = LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "First", Date: todayStr(), AssignedWorkoutID: &id,
	})
	require.NoError(t, err)

	_, err = LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Second", Date: todayStr(), AssignedWorkoutID: &id,
	})
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestFreeWorkoutsUnlimited(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	for i := 0; i < 3; i++ {
		_, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
			AthleteID: f.athlete.AthleteID.String(),
			Title:     "Free session", Date: todayStr(),
		})
		require.NoError(t, err)
	}

	workouts, err := GetAthleteWorkouts(db, f.athlete.AthleteID)
	require.NoError(t, err)
	assert.Len(t, workouts, 3)
}

func TestDeleteWorkoutRemovesLinkedAssignment(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	assignment, err := CreateAssignmentForAthlete(db, f.athlete.AthleteID, f.coach.CoachID, dto.CreateAssignedWorkoutRequest{
		Title:         "Intervals",
		ScheduledDate: todayStr(),
	})
	require.NoError(t, err)

	id := assignment.AssignedWorkoutID.String()
	workout, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Done", Date: todayStr(), AssignedWorkoutID: &id,
	})
	require.NoError(t, err)

	require.NoError(t, DeleteWorkout(db, workout.WorkoutID, f.coach.CoachID))

	// deleting the execution takes the plan with it
	_, err = GetAssignment(db, assignment.AssignedWorkoutID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	_, err = GetWorkout(db, workout.WorkoutID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	var count int64
	require.NoError(t, db.Model(&model.AssignedWorkoutModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteFreeWorkout(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	workout, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Free", Date: todayStr(),
	})
	require.NoError(t, err)

	require.NoError(t, DeleteWorkout(db, workout.WorkoutID, f.coach.CoachID))

	_, err = GetWorkout(db, workout.WorkoutID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestDeleteWorkoutForeignCoach(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	rival := seedCoach(t, db, "rival@test.dev")

	workout, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Free", Date: todayStr(),
	})
	require.NoError(t, err)

	err = DeleteWorkout(db, workout.WorkoutID, rival.CoachID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	_, err = GetWorkout(db, workout.WorkoutID)
	require.NoError(t, err)
}

func TestUpdateWorkoutPartial(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	notes := "felt good"
	workout, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Run", Date: todayStr(), Notes: &notes,
	})
	require.NoError(t, err)

	title := "Long run"
	_, err = UpdateWorkout(db, workout.WorkoutID, f.coach.CoachID, dto.UpdateWorkoutRequest{Title: &title})
	require.NoError(t, err)

	got, err := GetWorkout(db, workout.WorkoutID)
	require.NoError(t, err)
	assert.Equal(t, "Long run", got.WorkoutTitle)
	require.NotNil(t, got.WorkoutNotes)
	assert.Equal(t, "felt good", *got.WorkoutNotes)
}

func TestUpdateWorkoutForeignCoach(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	rival := seedCoach(t, db, "rival@test.dev")

	workout, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Run", Date: todayStr(),
	})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = UpdateWorkout(db, workout.WorkoutID, rival.CoachID, dto.UpdateWorkoutRequest{Title: &title})
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestGetAthleteSummaryWindows(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	now := time.Now().UTC()

	// today: counts everywhere and becomes last_workout_date
	_, err := LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Today", Date: now.Format(dateLayout),
	})
	require.NoError(t, err)

	// well outside week and month windows: total only
	old := now.AddDate(0, -2, 0)
	_, err = LogWorkout(db, f.coach.CoachID, dto.CreateWorkoutRequest{
		AthleteID: f.athlete.AthleteID.String(),
		Title:     "Old", Date: old.Format(dateLayout),
	})
	require.NoError(t, err)

	summary, err := GetAthleteSummary(db, f.athlete.AthleteID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.TotalWorkouts)
	assert.EqualValues(t, 1, summary.WorkoutsThisWeek)
	assert.EqualValues(t, 1, summary.WorkoutsThisMonth)
	require.NotNil(t, summary.LastWorkoutDate)
	assert.Equal(t, now.Format(dateLayout), *summary.LastWorkoutDate)
}

func TestGetAthleteSummaryEmpty(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	summary, err := GetAthleteSummary(db, f.athlete.AthleteID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.TotalWorkouts)
	assert.Nil(t, summary.LastWorkoutDate)
}
