// internals/features/training/service/workout_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coachingService "sportan_backend/internals/features/coaching/service"
	"sportan_backend/internals/features/training/dto"
	"sportan_backend/internals/features/training/model"
	helper "sportan_backend/internals/helpers"
)

// LogWorkout records an executed session on behalf of the coach. The coach
// must own the target athlete. When the log claims an assignment, the
// assignment must belong to the same athlete and gets flipped to completed in
// the same transaction. The unique index on the link column turns a second
// completion attempt into a conflict.
func LogWorkout(db *gorm.DB, coachID uuid.UUID, req dto.CreateWorkoutRequest) (model.WorkoutModel, error) {
	athleteID, err := uuid.Parse(req.AthleteID)
	if err != nil {
		return model.WorkoutModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid athlete_id")
	}
	if _, err := coachingService.GetAthlete(db, athleteID, coachID); err != nil {
		return model.WorkoutModel{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return model.WorkoutModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}

	var assignedID *uuid.UUID
	if req.AssignedWorkoutID != nil {
		id, err := uuid.Parse(*req.AssignedWorkoutID)
		if err != nil {
			return model.WorkoutModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid assigned_workout_id")
		}
		assignment, err := GetAssignment(db, id)
		if err != nil {
			return model.WorkoutModel{}, err
		}
		if assignment.AssignedWorkoutAthleteID != athleteID {
			return model.WorkoutModel{}, fiber.NewError(fiber.StatusBadRequest, "Assigned workout does not belong to this athlete")
		}
		assignedID = &id
	}

	workout := model.WorkoutModel{
		WorkoutAthleteID:         athleteID,
		WorkoutAssignedWorkoutID: assignedID,
		WorkoutDate:              date,
		WorkoutTitle:             req.Title,
		WorkoutNotes:             req.Notes,
		WorkoutMetrics:           req.Metrics,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workout).Error; err != nil {
			return err
		}
		if assignedID != nil {
			return tx.Model(&model.AssignedWorkoutModel{}).
				Where("assigned_workout_id = ?", *assignedID).
				Update("assigned_workout_status", model.StatusCompleted).Error
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return model.WorkoutModel{}, fiber.NewError(fiber.StatusConflict, "Assignment already has a logged workout")
		}
		return model.WorkoutModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to log workout")
	}
	return workout, nil
}

// GetWorkout loads by id alone; who may see it is decided at the handler.
func GetWorkout(db *gorm.DB, workoutID uuid.UUID) (model.WorkoutModel, error) {
	var workout model.WorkoutModel
	err := db.Where("workout_id = ?", workoutID).First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.WorkoutModel{}, fiber.NewError(fiber.StatusNotFound, "Workout not found")
		}
		return model.WorkoutModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load workout")
	}
	return workout, nil
}

// getOwnedWorkout is the coach-scoped lookup; a workout whose athlete belongs
// to another coach reads as absent.
func getOwnedWorkout(db *gorm.DB, workoutID, coachID uuid.UUID) (model.WorkoutModel, error) {
	workout, err := GetWorkout(db, workoutID)
	if err != nil {
		return model.WorkoutModel{}, err
	}
	if _, err := coachingService.GetAthlete(db, workout.WorkoutAthleteID, coachID); err != nil {
		return model.WorkoutModel{}, fiber.NewError(fiber.StatusNotFound, "Workout not found")
	}
	return workout, nil
}

func UpdateWorkout(db *gorm.DB, workoutID, coachID uuid.UUID, req dto.UpdateWorkoutRequest) (model.WorkoutModel, error) {
	workout, err := getOwnedWorkout(db, workoutID, coachID)
	if err != nil {
		return model.WorkoutModel{}, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["workout_title"] = *req.Title
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return model.WorkoutModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		updates["workout_date"] = date
	}
	if req.Notes != nil {
		updates["workout_notes"] = *req.Notes
	}
	if req.Metrics != nil {
		updates["workout_metrics"] = req.Metrics
	}
	if len(updates) == 0 {
		return workout, nil
	}

	if err := db.Model(&workout).Updates(updates).Error; err != nil {
		return model.WorkoutModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to update workout")
	}
	return workout, nil
}

// DeleteWorkout removes the log. Deleting an execution record also deletes
// its plan: a linked assignment goes away with the workout, in one
// transaction. Unlinked workouts are deleted alone.
func DeleteWorkout(db *gorm.DB, workoutID, coachID uuid.UUID) error {
	workout, err := getOwnedWorkout(db, workoutID, coachID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workout.WorkoutID).
			Delete(&model.WorkoutModel{}).Error; err != nil {
			return err
		}
		if workout.WorkoutAssignedWorkoutID != nil {
			return tx.Where("assigned_workout_id = ?", *workout.WorkoutAssignedWorkoutID).
				Delete(&model.AssignedWorkoutModel{}).Error
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete workout")
	}
	return nil
}

// GetAthleteWorkouts lists one athlete's logs, newest first. Ownership is the
// caller's concern.
func GetAthleteWorkouts(db *gorm.DB, athleteID uuid.UUID) ([]model.WorkoutModel, error) {
	var workouts []model.WorkoutModel
	err := db.Where("workout_athlete_id = ?", athleteID).
		Order("workout_date DESC, workout_created_at DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load workouts")
	}
	return workouts, nil
}

// GetAthleteSummary aggregates activity counters. Weeks start on Monday and
// all windows are computed in UTC.
func GetAthleteSummary(db *gorm.DB, athleteID uuid.UUID) (dto.AthleteSummaryDTO, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int((now.Weekday()+6)%7))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	base := db.Model(&model.WorkoutModel{}).Where("workout_athlete_id = ?", athleteID)

	var summary dto.AthleteSummaryDTO
	if err := base.Session(&gorm.Session{}).Count(&summary.TotalWorkouts).Error; err != nil {
		return dto.AthleteSummaryDTO{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load summary")
	}
	if err := base.Session(&gorm.Session{}).
		Where("workout_date >= ?", weekStart).
		Count(&summary.WorkoutsThisWeek).Error; err != nil {
		return dto.AthleteSummaryDTO{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load summary")
	}
	if err := base.Session(&gorm.Session{}).
		Where("workout_date >= ?", monthStart).
		Count(&summary.WorkoutsThisMonth).Error; err != nil {
		return dto.AthleteSummaryDTO{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load summary")
	}

	var last model.WorkoutModel
	err := db.Where("workout_athlete_id = ?", athleteID).
		Order("workout_date DESC").
		First(&last).Error
	if err == nil {
		s := last.WorkoutDate.Format(dateLayout)
		summary.LastWorkoutDate = &s
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AthleteSummaryDTO{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load summary")
	}
	return summary, nil
}
