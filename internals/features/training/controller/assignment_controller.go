package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coachingService "sportan_backend/internals/features/coaching/service"
	identityService "sportan_backend/internals/features/identity/service"
	"sportan_backend/internals/features/training/dto"
	"sportan_backend/internals/features/training/model"
	"sportan_backend/internals/features/training/service"
	helper "sportan_backend/internals/helpers"
)

var validateTraining = validator.New()

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

// =======================
// ➕ POST /coach/groups/:groupId/assigned-workouts - fan out to all members
// =======================
func (ctrl *AssignmentController) CreateForGroup(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.CreateAssignedWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTraining.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assignments, err := service.CreateAssignmentForGroup(ctrl.DB, groupID, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Assignments created", dto.ToAssignedWorkoutDTOs(assignments))
}

// =======================
// 📄 GET /coach/groups/:groupId/assigned-workouts
// =======================
func (ctrl *AssignmentController) GetGroupAssignments(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	assignments, err := service.GetGroupAssignments(ctrl.DB, groupID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Assignments", dto.ToAssignedWorkoutDTOs(assignments))
}

// =======================
// ➕ POST /coach/athletes/:athleteId/assigned-workouts
// =======================
func (ctrl *AssignmentController) CreateForAthlete(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	var req dto.CreateAssignedWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTraining.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := service.CreateAssignmentForAthlete(ctrl.DB, athleteID, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Assignment created", dto.ToAssignedWorkoutDTO(assignment))
}

// =======================
// 📄 GET /coach/athletes/:athleteId/assigned-workouts
// =======================
func (ctrl *AssignmentController) GetAthleteAssignments(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}
	if _, err := coachingService.GetAthlete(ctrl.DB, athleteID, coach.CoachID); err != nil {
		return helper.FromFiberError(c, err)
	}

	assignments, err := service.GetAthleteAssignments(ctrl.DB, athleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Assignments", dto.ToAssignedWorkoutDTOs(assignments))
}

// =======================
// 📄 GET /athlete/me/assigned-workouts - own plan
// =======================
func (ctrl *AssignmentController) GetOwnAssignments(c *fiber.Ctx) error {
	athlete, err := identityService.RequireAthlete(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignments, err := service.GetAthleteAssignments(ctrl.DB, athlete.AthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Assignments", dto.ToAssignedWorkoutDTOs(assignments))
}

// =======================
// ✏️ PATCH /coach/assigned-workouts/:assignmentId
// Status flips are keyed by id alone, matching the service.
// =======================
func (ctrl *AssignmentController) UpdateStatus(c *fiber.Ctx) error {
	if _, err := identityService.RequireCoach(c, ctrl.DB); err != nil {
		return helper.FromFiberError(c, err)
	}
	assignmentID, err := uuid.Parse(c.Params("assignmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req dto.UpdateAssignedWorkoutStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTraining.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	assignment, err := service.UpdateAssignmentStatus(ctrl.DB, assignmentID, model.WorkoutStatus(req.Status))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Assignment updated", dto.ToAssignedWorkoutDTO(assignment))
}

// =======================
// 📄 GET /parent/athlete/assigned-workouts - linked child's plan
// =======================
func (ctrl *AssignmentController) GetChildAssignments(c *fiber.Ctx) error {
	parent, err := identityService.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	assignments, err := service.GetAthleteAssignments(ctrl.DB, parent.ParentAthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Assignments", dto.ToAssignedWorkoutDTOs(assignments))
}

// =======================
// 🧹 POST /system/update-statuses - external cron entrypoint
// =======================
func (ctrl *AssignmentController) UpdateSkipped(c *fiber.Ctx) error {
	n, err := service.UpdateSkippedAssignments(ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Skipped assignments updated", fiber.Map{"updated_count": n})
}
