package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportan_backend/internals/features/identity/controller"
)

// IdentityRoutes: the /me endpoints for each role plus the parent's child view.
func IdentityRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewIdentityController(db)

	api.Get("/coach/me", ctrl.CoachMe)
	api.Get("/athlete/me", ctrl.AthleteMe)
	api.Get("/parent/me", ctrl.ParentMe)
	api.Get("/parent/athlete", ctrl.ParentChild)
}
