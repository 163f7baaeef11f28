package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportan_backend/internals/features/identity/dto"
	"sportan_backend/internals/features/identity/model"
	"sportan_backend/internals/features/identity/service"
	helper "sportan_backend/internals/helpers"
)

type IdentityController struct {
	DB *gorm.DB
}

func NewIdentityController(db *gorm.DB) *IdentityController {
	return &IdentityController{DB: db}
}

// =======================
// GET /coach/me
// =======================
func (ctrl *IdentityController) CoachMe(c *fiber.Ctx) error {
	coach, err := service.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Coach profile", dto.ToCoachDTO(*coach))
}

// =======================
// GET /athlete/me
// =======================
func (ctrl *IdentityController) AthleteMe(c *fiber.Ctx) error {
	athlete, err := service.RequireAthlete(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Athlete profile", dto.ToAthleteDTO(*athlete))
}

// =======================
// GET /parent/me
// =======================
func (ctrl *IdentityController) ParentMe(c *fiber.Ctx) error {
	parent, err := service.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Parent profile", dto.ToParentDTO(*parent))
}

// =======================
// GET /parent/athlete - the linked child's profile
// =======================
func (ctrl *IdentityController) ParentChild(c *fiber.Ctx) error {
	parent, err := service.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var athlete model.AthleteModel
	if err := ctrl.DB.Where("athlete_id = ?", parent.ParentAthleteID).First(&athlete).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Linked athlete not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load athlete")
	}
	return helper.JsonOK(c, "Linked athlete", dto.ToAthleteDTO(athlete))
}
