package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportan_backend/internals/features/training/controller"
)

// TrainingRoutes wires assignment and workout endpoints for all three roles.
// The system sweep endpoint is registered separately behind the system-token
// guard, see SystemTrainingRoutes.
func TrainingRoutes(api fiber.Router, db *gorm.DB) {
	assignmentCtrl := controller.NewAssignmentController(db)
	workoutCtrl := controller.NewWorkoutController(db)

	// === COACH ===
	coach := api.Group("/coach")
	coach.Post("/groups/:groupId/assigned-workouts", assignmentCtrl.CreateForGroup)
	coach.Get("/groups/:groupId/assigned-workouts", assignmentCtrl.GetGroupAssignments)
	coach.Post("/athletes/:athleteId/assigned-workouts", assignmentCtrl.CreateForAthlete)
	coach.Get("/athletes/:athleteId/assigned-workouts", assignmentCtrl.GetAthleteAssignments)
	coach.Patch("/assigned-workouts/:assignmentId", assignmentCtrl.UpdateStatus)
	coach.Get("/athletes/:athleteId/workouts", workoutCtrl.GetAthleteWorkouts)
	coach.Get("/athletes/:athleteId/summary", workoutCtrl.GetAthleteSummary)

	// === ATHLETE SELF VIEWS ===
	athlete := api.Group("/athlete")
	athlete.Get("/me/workouts", workoutCtrl.GetOwnWorkouts)
	athlete.Get("/me/assigned-workouts", assignmentCtrl.GetOwnAssignments)

	// === PARENT VIEWS ===
	parent := api.Group("/parent")
	parent.Get("/athlete/summary", workoutCtrl.GetChildSummary)
	parent.Get("/athlete/workouts", workoutCtrl.GetChildWorkouts)
	parent.Get("/athlete/assigned-workouts", assignmentCtrl.GetChildAssignments)

	// === WORKOUT LOG ===
	// POST/PUT/DELETE are coach-only (enforced in the handlers); GET is the
	// shared role-scoped read.
	api.Post("/workouts", workoutCtrl.LogWorkout)
	api.Get("/workouts/:workoutId", workoutCtrl.GetWorkout)
	api.Put("/workouts/:workoutId", workoutCtrl.UpdateWorkout)
	api.Delete("/workouts/:workoutId", workoutCtrl.DeleteWorkout)
}

// SystemTrainingRoutes registers the cron entrypoint. The caller mounts it
// behind the X-System-Token middleware.
func SystemTrainingRoutes(system fiber.Router, db *gorm.DB) {
	assignmentCtrl := controller.NewAssignmentController(db)
	system.Post("/update-statuses", assignmentCtrl.UpdateSkipped)
}
