package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/coaching/dto"
	"sportan_backend/internals/features/coaching/service"
	identityDTO "sportan_backend/internals/features/identity/dto"
	identityService "sportan_backend/internals/features/identity/service"
	helper "sportan_backend/internals/helpers"
)

type ParentController struct {
	DB      *gorm.DB
	Parents *service.ParentService
}

func NewParentController(db *gorm.DB, parents *service.ParentService) *ParentController {
	return &ParentController{DB: db, Parents: parents}
}

// =======================
// ➕ POST /coach/parents
// Provisions a provider login, then links the local row. Not atomic across
// the two systems, see service.CreateParent.
// =======================
func (ctrl *ParentController) CreateParent(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoaching.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	parent, err := ctrl.Parents.CreateParent(c.UserContext(), coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Parent created", identityDTO.ToParentDTO(parent))
}

// =======================
// 🔍 GET /coach/parents/:parentId
// =======================
func (ctrl *ParentController) GetParent(c *fiber.Ctx) error {
	if _, err := identityService.RequireCoach(c, ctrl.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	parentID, err := uuid.Parse(c.Params("parentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent id")
	}

	parent, err := ctrl.Parents.GetParent(parentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Parent", identityDTO.ToParentDTO(parent))
}

// =======================
// ✏️ PUT /coach/parents/:parentId
// =======================
func (ctrl *ParentController) UpdateParent(c *fiber.Ctx) error {
	if _, err := identityService.RequireCoach(c, ctrl.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	parentID, err := uuid.Parse(c.Params("parentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent id")
	}

	var req dto.UpdateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoaching.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	parent, err := ctrl.Parents.UpdateParent(parentID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Parent updated", identityDTO.ToParentDTO(parent))
}

// =======================
// 🗑️ DELETE /coach/parents/:parentId
// =======================
func (ctrl *ParentController) DeleteParent(c *fiber.Ctx) error {
	if _, err := identityService.RequireCoach(c, ctrl.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	parentID, err := uuid.Parse(c.Params("parentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid parent id")
	}

	if err := ctrl.Parents.DeleteParent(c.UserContext(), parentID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Parent deleted", fiber.Map{"parent_id": parentID.String()})
}

// =======================
// 🔍 GET /coach/athletes/:athleteId/parent
// =======================
func (ctrl *ParentController) GetAthleteParent(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	parent, err := ctrl.Parents.GetAthleteParent(athleteID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if parent == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No parent linked")
	}
	return helper.JsonOK(c, "Parent", identityDTO.ToParentDTO(*parent))
}
