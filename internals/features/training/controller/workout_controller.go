package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	coachingService "sportan_backend/internals/features/coaching/service"
	identityService "sportan_backend/internals/features/identity/service"
	"sportan_backend/internals/features/training/dto"
	"sportan_backend/internals/features/training/service"
	helper "sportan_backend/internals/helpers"
)

type WorkoutController struct {
	DB *gorm.DB
}

func NewWorkoutController(db *gorm.DB) *WorkoutController {
	return &WorkoutController{DB: db}
}

// =======================
// ➕ POST /workouts - coach logs a session for one of their athletes
// =======================
func (ctrl *WorkoutController) LogWorkout(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTraining.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	workout, err := service.LogWorkout(ctrl.DB, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Workout logged", dto.ToWorkoutDTO(workout))
}

// =======================
// 📄 GET /athlete/me/workouts - own history
// =======================
func (ctrl *WorkoutController) GetOwnWorkouts(c *fiber.Ctx) error {
	athlete, err := identityService.RequireAthlete(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	workouts, err := service.GetAthleteWorkouts(ctrl.DB, athlete.AthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Workouts", dto.ToWorkoutDTOs(workouts))
}

// =======================
// ✏️ PUT /workouts/:workoutId - coach only, own athlete's log
// =======================
func (ctrl *WorkoutController) UpdateWorkout(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}

	var req dto.UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTraining.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	workout, err := service.UpdateWorkout(ctrl.DB, workoutID, coach.CoachID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Workout updated", dto.ToWorkoutDTO(workout))
}

// =======================
// 🗑️ DELETE /workouts/:workoutId - coach only, own athlete's log
// =======================
func (ctrl *WorkoutController) DeleteWorkout(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}

	if err := service.DeleteWorkout(ctrl.DB, workoutID, coach.CoachID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Workout deleted", fiber.Map{"workout_id": workoutID.String()})
}

// =======================
// 📄 GET /coach/athletes/:athleteId/workouts
// =======================
func (ctrl *WorkoutController) GetAthleteWorkouts(c *fiber.Ctx) error {
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

	workouts, err := service.GetAthleteWorkouts(ctrl.DB, athleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Workouts", dto.ToWorkoutDTOs(workouts))
}

// =======================
// 📄 GET /coach/athletes/:athleteId/summary
// =======================
func (ctrl *WorkoutController) GetAthleteSummary(c *fiber.Ctx) error {
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

	summary, err := service.GetAthleteSummary(ctrl.DB, athleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Summary", summary)
}

// =======================
// 📄 GET /parent/athlete/workouts - linked child's history
// =======================
func (ctrl *WorkoutController) GetChildWorkouts(c *fiber.Ctx) error {
	parent, err := identityService.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	workouts, err := service.GetAthleteWorkouts(ctrl.DB, parent.ParentAthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Workouts", dto.ToWorkoutDTOs(workouts))
}

// =======================
// 📄 GET /parent/athlete/summary
// =======================
func (ctrl *WorkoutController) GetChildSummary(c *fiber.Ctx) error {
	parent, err := identityService.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	summary, err := service.GetAthleteSummary(ctrl.DB, parent.ParentAthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Summary", summary)
}

// =======================
// 🔍 GET /workouts/:workoutId - shared, role-scoped detail view
// Coach sees their athletes' logs, athletes their own, parents their child's.
// Anything outside that reads as absent.
// =======================
func (ctrl *WorkoutController) GetWorkout(c *fiber.Ctx) error {
	principal, err := identityService.CurrentPrincipal(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid workout id")
	}

	workout, err := service.GetWorkout(ctrl.DB, workoutID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	switch principal.Role {
	case identityService.RoleCoach:
		if _, err := coachingService.GetAthlete(ctrl.DB, workout.WorkoutAthleteID, principal.Coach.CoachID); err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Workout not found")
		}
	case identityService.RoleAthlete:
		if workout.WorkoutAthleteID != principal.Athlete.AthleteID {
			return helper.JsonError(c, fiber.StatusNotFound, "Workout not found")
		}
	case identityService.RoleParent:
		if workout.WorkoutAthleteID != principal.Parent.ParentAthleteID {
			return helper.JsonError(c, fiber.StatusNotFound, "Workout not found")
		}
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Unknown role")
	}
	return helper.JsonOK(c, "Workout", dto.ToWorkoutDTO(workout))
}
