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

type AthleteController struct {
	DB *gorm.DB
}

func NewAthleteController(db *gorm.DB) *AthleteController {
	return &AthleteController{DB: db}
}

// =======================
// 📄 GET /coach/athletes - full roster
// =======================
func (ctrl *AthleteController) GetAthletes(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	athletes, err := service.GetCoachAthletes(ctrl.DB, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Athletes", identityDTO.ToAthleteDTOs(athletes))
}

// =======================
// 🔍 GET /coach/athletes/:athleteId
// =======================
func (ctrl *AthleteController) GetAthlete(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	athlete, err := service.GetAthlete(ctrl.DB, athleteID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Athlete", identityDTO.ToAthleteDTO(athlete))
}

// =======================
// ✏️ PUT /coach/athletes/:athleteId
// =======================
func (ctrl *AthleteController) UpdateAthlete(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	var req dto.UpdateAthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCoaching.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	athlete, err := service.UpdateAthlete(ctrl.DB, athleteID, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Athlete updated", identityDTO.ToAthleteDTO(athlete))
}

// =======================
// 🗑️ DELETE /coach/athletes/:athleteId
// =======================
func (ctrl *AthleteController) DeleteAthlete(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	if err := service.DeleteAthlete(ctrl.DB, athleteID, coach.CoachID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Athlete deleted", fiber.Map{"athlete_id": athleteID.String()})
}
