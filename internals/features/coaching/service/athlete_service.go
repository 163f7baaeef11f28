// internals/features/coaching/service/athlete_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aiModel "sportan_backend/internals/features/ai/model"
	"sportan_backend/internals/features/coaching/dto"
	"sportan_backend/internals/features/coaching/model"
	identityModel "sportan_backend/internals/features/identity/model"
	trainingModel "sportan_backend/internals/features/training/model"
)

const dateLayout = "2006-01-02"

// CreateAthlete creates the profile and its first membership in one
// transaction, so an athlete is never observably groupless.
func CreateAthlete(db *gorm.DB, coachID, groupID uuid.UUID, req dto.CreateAthleteRequest) (identityModel.AthleteModel, error) {
	if _, err := GetGroupByID(db, groupID, coachID); err != nil {
		return identityModel.AthleteModel{}, err
	}

	var dob *time.Time
	if req.DOB != nil {
		parsed, err := time.Parse(dateLayout, *req.DOB)
		if err != nil {
			return identityModel.AthleteModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid dob, expected YYYY-MM-DD")
		}
		dob = &parsed
	}

	athlete := identityModel.AthleteModel{
		AthleteCoachID:  coachID,
		AthleteFullName: req.FullName,
		AthleteDOB:      dob,
		AthleteNotes:    req.Notes,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&athlete).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create athlete")
		}
		membership := model.GroupAthleteModel{
			GroupAthleteGroupID:   groupID,
			GroupAthleteAthleteID: athlete.AthleteID,
		}
		if err := tx.Create(&membership).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to add athlete to group")
		}
		return nil
	})
	if err != nil {
		return identityModel.AthleteModel{}, err
	}
	return athlete, nil
}

// GetAthlete is the ownership gate used across training and AI as well.
func GetAthlete(db *gorm.DB, athleteID, coachID uuid.UUID) (identityModel.AthleteModel, error) {
	var athlete identityModel.AthleteModel
	err := db.
		Where("athlete_id = ? AND athlete_coach_id = ?", athleteID, coachID).
		First(&athlete).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identityModel.AthleteModel{}, fiber.NewError(fiber.StatusNotFound, "Athlete not found")
		}
		return identityModel.AthleteModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load athlete")
	}
	return athlete, nil
}

func GetCoachAthletes(db *gorm.DB, coachID uuid.UUID) ([]identityModel.AthleteModel, error) {
	var athletes []identityModel.AthleteModel
	if err := db.
		Where("athlete_coach_id = ?", coachID).
		Order("athlete_created_at DESC").
		Find(&athletes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list athletes")
	}
	return athletes, nil
}

func UpdateAthlete(db *gorm.DB, athleteID, coachID uuid.UUID, req dto.UpdateAthleteRequest) (identityModel.AthleteModel, error) {
	athlete, err := GetAthlete(db, athleteID, coachID)
	if err != nil {
		return identityModel.AthleteModel{}, err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["athlete_full_name"] = *req.FullName
	}
	if req.DOB != nil {
		parsed, err := time.Parse(dateLayout, *req.DOB)
		if err != nil {
			return identityModel.AthleteModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid dob, expected YYYY-MM-DD")
		}
		updates["athlete_dob"] = parsed
	}
	if req.Notes != nil {
		updates["athlete_notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return athlete, nil
	}

	if err := db.Model(&athlete).Updates(updates).Error; err != nil {
		return identityModel.AthleteModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to update athlete")
	}
	return athlete, nil
}

func DeleteAthlete(db *gorm.DB, athleteID, coachID uuid.UUID) error {
	if _, err := GetAthlete(db, athleteID, coachID); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return deleteAthletesCascade(tx, []uuid.UUID{athleteID})
	})
}

// deleteAthletesCascade removes athletes and everything hanging off them:
// parent link, memberships, workouts, assignments, reports. Explicit
// statements instead of DB cascade triggers keep the fan-out auditable.
// Caller supplies the transaction.
func deleteAthletesCascade(tx *gorm.DB, athleteIDs []uuid.UUID) error {
	if len(athleteIDs) == 0 {
		return nil
	}

	if err := tx.Where("parent_athlete_id IN ?", athleteIDs).
		Delete(&identityModel.ParentModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete parents")
	}
	if err := tx.Where("group_athlete_athlete_id IN ?", athleteIDs).
		Delete(&model.GroupAthleteModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete memberships")
	}
	if err := tx.Where("workout_athlete_id IN ?", athleteIDs).
		Delete(&trainingModel.WorkoutModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete workouts")
	}
	if err := tx.Where("assigned_workout_athlete_id IN ?", athleteIDs).
		Delete(&trainingModel.AssignedWorkoutModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete assigned workouts")
	}
	if err := tx.Where("talent_report_athlete_id IN ?", athleteIDs).
		Delete(&aiModel.TalentReportModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete talent reports")
	}
	if err := tx.Where("weekly_insight_athlete_id IN ?", athleteIDs).
		Delete(&aiModel.WeeklyInsightModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete weekly insights")
	}
	if err := tx.Where("athlete_id IN ?", athleteIDs).
		Delete(&identityModel.AthleteModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete athletes")
	}
	return nil
}
