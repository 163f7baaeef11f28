package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportan_backend/internals/features/ai/controller"
	"sportan_backend/internals/features/ai/service"
	"sportan_backend/internals/middlewares"
)

// AIRoutes wires report generation and retrieval. Generation endpoints sit
// behind the tighter AI rate limiter.
func AIRoutes(api fiber.Router, db *gorm.DB, reports *service.ReportService) {
	reportCtrl := controller.NewReportController(db, reports)

	coach := api.Group("/coach")
	coach.Post("/athletes/:athleteId/ai/talent-recognition", middlewares.AIRateLimiter(), reportCtrl.GenerateTalentReport)
	coach.Get("/athletes/:athleteId/ai/talent-recognition", reportCtrl.GetTalentReport)
	coach.Post("/athletes/:athleteId/ai/weekly-insights", middlewares.AIRateLimiter(), reportCtrl.GenerateWeeklyInsights)
	coach.Get("/athletes/:athleteId/ai/weekly-insights", reportCtrl.GetWeeklyInsight)

	parent := api.Group("/parent")
	parent.Get("/athlete/ai/talent-recognition", reportCtrl.GetChildTalentReport)
	parent.Get("/athlete/ai/weekly-insights", reportCtrl.GetChildWeeklyInsight)
}
