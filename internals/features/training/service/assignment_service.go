// internals/features/training/service/assignment_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coachingModel "sportan_backend/internals/features/coaching/model"
	coachingService "sportan_backend/internals/features/coaching/service"
	"sportan_backend/internals/features/training/dto"
	"sportan_backend/internals/features/training/model"
)

const dateLayout = "2006-01-02"

func parseScheduledDate(raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid scheduled_date, expected YYYY-MM-DD")
	}
	return d, nil
}

// CreateAssignmentForGroup fans one plan out to every current member of the
// group. All rows commit in one transaction; an empty group yields an empty
// result, not an error.
func CreateAssignmentForGroup(db *gorm.DB, groupID, coachID uuid.UUID, req dto.CreateAssignedWorkoutRequest) ([]model.AssignedWorkoutModel, error) {
	if _, err := coachingService.GetGroupByID(db, groupID, coachID); err != nil {
		return nil, err
	}
	scheduled, err := parseScheduledDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	var athleteIDs []uuid.UUID
	if err := db.Model(&coachingModel.GroupAthleteModel{}).
		Where("group_athlete_group_id = ?", groupID).
		Pluck("group_athlete_athlete_id", &athleteIDs).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load group members")
	}

	assignments := make([]model.AssignedWorkoutModel, 0, len(athleteIDs))
	for _, athleteID := range athleteIDs {
		assignments = append(assignments, model.AssignedWorkoutModel{
			AssignedWorkoutAthleteID:     athleteID,
			AssignedWorkoutScheduledDate: scheduled,
			AssignedWorkoutTitle:         req.Title,
			AssignedWorkoutDescription:   req.Description,
			AssignedWorkoutStatus:        model.StatusPending,
		})
	}
	if len(assignments) == 0 {
		return assignments, nil
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&assignments).Error
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignments")
	}
	return assignments, nil
}

// CreateAssignmentForAthlete plans a single workout for one athlete.
func CreateAssignmentForAthlete(db *gorm.DB, athleteID, coachID uuid.UUID, req dto.CreateAssignedWorkoutRequest) (model.AssignedWorkoutModel, error) {
	if _, err := coachingService.GetAthlete(db, athleteID, coachID); err != nil {
		return model.AssignedWorkoutModel{}, err
	}
	scheduled, err := parseScheduledDate(req.ScheduledDate)
	if err != nil {
		return model.AssignedWorkoutModel{}, err
	}

	assignment := model.AssignedWorkoutModel{
		AssignedWorkoutAthleteID:     athleteID,
		AssignedWorkoutScheduledDate: scheduled,
		AssignedWorkoutTitle:         req.Title,
		AssignedWorkoutDescription:   req.Description,
		AssignedWorkoutStatus:        model.StatusPending,
	}
	if err := db.Create(&assignment).Error; err != nil {
		return model.AssignedWorkoutModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to create assignment")
	}
	return assignment, nil
}

func GetAssignment(db *gorm.DB, assignmentID uuid.UUID) (model.AssignedWorkoutModel, error) {
	var assignment model.AssignedWorkoutModel
	err := db.Where("assigned_workout_id = ?", assignmentID).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AssignedWorkoutModel{}, fiber.NewError(fiber.StatusNotFound, "Assignment not found")
		}
		return model.AssignedWorkoutModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignment")
	}
	return assignment, nil
}

// UpdateAssignmentStatus changes the plan's status by id alone; any
// authenticated caller who knows the id may flip it.
func UpdateAssignmentStatus(db *gorm.DB, assignmentID uuid.UUID, status model.WorkoutStatus) (model.AssignedWorkoutModel, error) {
	if !status.Valid() {
		return model.AssignedWorkoutModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}
	assignment, err := GetAssignment(db, assignmentID)
	if err != nil {
		return model.AssignedWorkoutModel{}, err
	}

	if err := db.Model(&assignment).
		Update("assigned_workout_status", status).Error; err != nil {
		return model.AssignedWorkoutModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to update assignment")
	}
	assignment.AssignedWorkoutStatus = status
	return assignment, nil
}

// GetGroupAssignments lists the plans of every current member of the group,
// newest schedule first.
func GetGroupAssignments(db *gorm.DB, groupID, coachID uuid.UUID) ([]model.AssignedWorkoutModel, error) {
	if _, err := coachingService.GetGroupByID(db, groupID, coachID); err != nil {
		return nil, err
	}

	var assignments []model.AssignedWorkoutModel
	err := db.
		Joins("JOIN group_athletes ON group_athletes.group_athlete_athlete_id = assigned_workouts.assigned_workout_athlete_id").
		Where("group_athletes.group_athlete_group_id = ?", groupID).
		Order("assigned_workouts.assigned_workout_scheduled_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignments")
	}
	return assignments, nil
}

// GetAthleteAssignments lists one athlete's plans, newest schedule first.
// Ownership is the caller's concern; athlete self-access passes its own id.
func GetAthleteAssignments(db *gorm.DB, athleteID uuid.UUID) ([]model.AssignedWorkoutModel, error) {
	var assignments []model.AssignedWorkoutModel
	err := db.Where("assigned_workout_athlete_id = ?", athleteID).
		Order("assigned_workout_scheduled_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assignments")
	}
	return assignments, nil
}

// UpdateSkippedAssignments marks every pending plan scheduled before today
// (UTC) as skipped. A single conditional UPDATE, so concurrent runs and
// re-runs are harmless; returns the number of rows flipped.
func UpdateSkippedAssignments(db *gorm.DB) (int64, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	res := db.Model(&model.AssignedWorkoutModel{}).
		Where("assigned_workout_status = ? AND assigned_workout_scheduled_date < ?", model.StatusPending, today).
		Update("assigned_workout_status", model.StatusSkipped)
	if res.Error != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to update skipped assignments")
	}
	return res.RowsAffected, nil
}
