package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/coaching/dto"
	"sportan_backend/internals/features/coaching/service"
	identityDTO "sportan_backend/internals/features/identity/dto"
	identityService "sportan_backend/internals/features/identity/service"
	helper "sportan_backend/internals/helpers"
)

var validateCoaching = validator.New()

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

// =======================
// ➕ POST /coach/groups
// =======================
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoaching.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := service.CreateGroup(ctrl.DB, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Group created", dto.ToGroupDTO(group))
}

// =======================
// 📄 GET /coach/groups
// =======================
func (ctrl *GroupController) GetGroups(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	groups, err := service.GetCoachGroups(ctrl.DB, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Groups", dto.ToGroupDTOs(groups))
}

// =======================
// 🔍 GET /coach/groups/:groupId
// =======================
func (ctrl *GroupController) GetGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	group, err := service.GetGroupByID(ctrl.DB, groupID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Group", dto.ToGroupDTO(group))
}

// =======================
// ✏️ PUT /coach/groups/:groupId
// =======================
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoaching.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := service.UpdateGroup(ctrl.DB, groupID, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Group updated", dto.ToGroupDTO(group))
}

// =======================
// 🗑️ DELETE /coach/groups/:groupId
// =======================
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	if err := service.DeleteGroup(ctrl.DB, groupID, coach.CoachID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Group deleted", fiber.Map{"group_id": groupID.String()})
}

// =======================
// 📄 GET /coach/groups/:groupId/athletes
// =======================
func (ctrl *GroupController) GetGroupAthletes(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	athletes, err := service.GetGroupAthletes(ctrl.DB, groupID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Group athletes", identityDTO.ToAthleteDTOs(athletes))
}

// =======================
// ➕ POST /coach/groups/:groupId/athletes - new athlete straight into the group
// =======================
func (ctrl *GroupController) CreateAthleteInGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.CreateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoaching.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	athlete, err := service.CreateAthlete(ctrl.DB, coach.CoachID, groupID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Athlete created", identityDTO.ToAthleteDTO(athlete))
}

// =======================
// ➕ POST /coach/groups/:groupId/athletes/:athleteId - add existing athlete
// =======================
func (ctrl *GroupController) AddAthleteToGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	if err := service.AddAthleteToGroup(ctrl.DB, groupID, athleteID, coach.CoachID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Athlete added", fiber.Map{
		"group_id":   groupID.String(),
		"athlete_id": athleteID.String(),
	})
}

// =======================
// 🗑️ DELETE /coach/groups/:groupId/athletes/:athleteId
// =======================
func (ctrl *GroupController) RemoveAthleteFromGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	if err := service.RemoveAthleteFromGroup(ctrl.DB, groupID, athleteID, coach.CoachID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Athlete removed from group", fiber.Map{
		"group_id":   groupID.String(),
		"athlete_id": athleteID.String(),
	})
}
