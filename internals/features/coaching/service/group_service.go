// internals/features/coaching/service/group_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/coaching/dto"
	"sportan_backend/internals/features/coaching/model"
	identityModel "sportan_backend/internals/features/identity/model"
)

// =======================
// Group operations
// =======================

func CreateGroup(db *gorm.DB, coachID uuid.UUID, req dto.CreateGroupRequest) (model.GroupModel, error) {
	group := model.GroupModel{
		GroupCoachID:     coachID,
		GroupName:        req.Name,
		GroupDescription: req.Description,
	}
	if err := db.Create(&group).Error; err != nil {
		return model.GroupModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to create group")
	}
	return group, nil
}

func GetCoachGroups(db *gorm.DB, coachID uuid.UUID) ([]model.GroupModel, error) {
	var groups []model.GroupModel
	if err := db.
		Where("group_coach_id = ?", coachID).
		Order("group_created_at DESC").
		Find(&groups).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list groups")
	}
	return groups, nil
}

// GetGroupByID is the ownership gate for everything group-scoped. A group
// owned by another coach is reported as absent, never as forbidden.
func GetGroupByID(db *gorm.DB, groupID, coachID uuid.UUID) (model.GroupModel, error) {
	var group model.GroupModel
	err := db.
		Where("group_id = ? AND group_coach_id = ?", groupID, coachID).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.GroupModel{}, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return model.GroupModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}
	return group, nil
}

func UpdateGroup(db *gorm.DB, groupID, coachID uuid.UUID, req dto.UpdateGroupRequest) (model.GroupModel, error) {
	group, err := GetGroupByID(db, groupID, coachID)
	if err != nil {
		return model.GroupModel{}, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["group_name"] = *req.Name
	}
	if req.Description != nil {
		updates["group_description"] = *req.Description
	}
	if len(updates) == 0 {
		return group, nil
	}

	if err := db.Model(&group).Updates(updates).Error; err != nil {
		return model.GroupModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to update group")
	}
	return group, nil
}

// DeleteGroup runs the two-phase orphan detection: membership counts are
// taken BEFORE the group's own memberships disappear, so "this was their only
// group" is decided on the pre-delete state. The whole thing is one
// transaction; a failure partway leaves nothing half-deleted.
func DeleteGroup(db *gorm.DB, groupID, coachID uuid.UUID) error {
	if _, err := GetGroupByID(db, groupID, coachID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// 1. every athlete currently in the group
		var memberIDs []uuid.UUID
		if err := tx.Model(&model.GroupAthleteModel{}).
			Where("group_athlete_group_id = ?", groupID).
			Pluck("group_athlete_athlete_id", &memberIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to list group members")
		}

		// 2. partition: anyone whose total membership count is <=1 goes down
		// with the group
		var orphanIDs []uuid.UUID
		for _, athleteID := range memberIDs {
			var count int64
			if err := tx.Model(&model.GroupAthleteModel{}).
				Where("group_athlete_athlete_id = ?", athleteID).
				Count(&count).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to count memberships")
			}
			if count <= 1 {
				orphanIDs = append(orphanIDs, athleteID)
			}
		}

		// 3. group + its memberships
		if err := tx.
			Where("group_athlete_group_id = ?", groupID).
			Delete(&model.GroupAthleteModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete memberships")
		}
		if err := tx.
			Where("group_id = ?", groupID).
			Delete(&model.GroupModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete group")
		}

		// 4. the athletes this group was holding up, with everything they own
		return deleteAthletesCascade(tx, orphanIDs)
	})
}

// =======================
// Membership operations
// =======================

func GetGroupAthletes(db *gorm.DB, groupID, coachID uuid.UUID) ([]identityModel.AthleteModel, error) {
	if _, err := GetGroupByID(db, groupID, coachID); err != nil {
		return nil, err
	}

	var athletes []identityModel.AthleteModel
	if err := db.
		Joins("JOIN group_athletes ON group_athletes.group_athlete_athlete_id = athletes.athlete_id").
		Where("group_athletes.group_athlete_group_id = ?", groupID).
		Find(&athletes).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to list group athletes")
	}
	return athletes, nil
}

func AddAthleteToGroup(db *gorm.DB, groupID, athleteID, coachID uuid.UUID) error {
	if _, err := GetGroupByID(db, groupID, coachID); err != nil {
		return err
	}
	// athlete must belong to the same coach
	if _, err := GetAthlete(db, athleteID, coachID); err != nil {
		return err
	}

	var existing int64
	if err := db.Model(&model.GroupAthleteModel{}).
		Where("group_athlete_group_id = ? AND group_athlete_athlete_id = ?", groupID, athleteID).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check membership")
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusConflict, "Athlete already in this group")
	}

	membership := model.GroupAthleteModel{
		GroupAthleteGroupID:   groupID,
		GroupAthleteAthleteID: athleteID,
	}
	if err := db.Create(&membership).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add athlete to group")
	}
	return nil
}

// RemoveAthleteFromGroup enforces the floating-athlete rule: an athlete may
// never be left with zero groups, so removal from the last group is rejected.
func RemoveAthleteFromGroup(db *gorm.DB, groupID, athleteID, coachID uuid.UUID) error {
	if _, err := GetGroupByID(db, groupID, coachID); err != nil {
		return err
	}

	var membership model.GroupAthleteModel
	err := db.
		Where("group_athlete_group_id = ? AND group_athlete_athlete_id = ?", groupID, athleteID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Athlete not in this group")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check membership")
	}

	var count int64
	if err := db.Model(&model.GroupAthleteModel{}).
		Where("group_athlete_athlete_id = ?", athleteID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count memberships")
	}
	if count <= 1 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Cannot remove athlete from their last group. Delete the athlete profile instead.")
	}

	if err := db.
		Where("group_athlete_group_id = ? AND group_athlete_athlete_id = ?", groupID, athleteID).
		Delete(&model.GroupAthleteModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove athlete from group")
	}
	return nil
}
