package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportan_backend/internals/features/coaching/controller"
	"sportan_backend/internals/features/coaching/service"
)

// CoachingRoutes wires the coach-facing group, athlete and parent endpoints.
func CoachingRoutes(api fiber.Router, db *gorm.DB, parents *service.ParentService) {
	groupCtrl := controller.NewGroupController(db)
	athleteCtrl := controller.NewAthleteController(db)
	parentCtrl := controller.NewParentController(db, parents)

	coach := api.Group("/coach")

	// === GROUPS ===
	coach.Post("/groups", groupCtrl.CreateGroup)
	coach.Get("/groups", groupCtrl.GetGroups)
	coach.Get("/groups/:groupId", groupCtrl.GetGroup)
	coach.Put("/groups/:groupId", groupCtrl.UpdateGroup)
	coach.Delete("/groups/:groupId", groupCtrl.DeleteGroup)

	// === MEMBERSHIP ===
	coach.Get("/groups/:groupId/athletes", groupCtrl.GetGroupAthletes)
	coach.Post("/groups/:groupId/athletes", groupCtrl.CreateAthleteInGroup)
	coach.Post("/groups/:groupId/athletes/:athleteId", groupCtrl.AddAthleteToGroup)
	coach.Delete("/groups/:groupId/athletes/:athleteId", groupCtrl.RemoveAthleteFromGroup) // last-membership rule applies

	// === ATHLETES ===
	coach.Get("/athletes", athleteCtrl.GetAthletes)
	coach.Get("/athletes/:athleteId", athleteCtrl.GetAthlete)
	coach.Put("/athletes/:athleteId", athleteCtrl.UpdateAthlete)
	coach.Delete("/athletes/:athleteId", athleteCtrl.DeleteAthlete)

	// === PARENTS ===
	coach.Post("/parents", parentCtrl.CreateParent)
	coach.Get("/parents/:parentId", parentCtrl.GetParent)
	coach.Put("/parents/:parentId", parentCtrl.UpdateParent)
	coach.Delete("/parents/:parentId", parentCtrl.DeleteParent)
	coach.Get("/athletes/:athleteId/parent", parentCtrl.GetAthleteParent)
}
