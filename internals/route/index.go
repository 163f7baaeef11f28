// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportan_backend/internals/configs"
	aiRoute "sportan_backend/internals/features/ai/route"
	aiService "sportan_backend/internals/features/ai/service"
	coachingRoute "sportan_backend/internals/features/coaching/route"
	coachingService "sportan_backend/internals/features/coaching/service"
	identityRoute "sportan_backend/internals/features/identity/route"
	trainingRoute "sportan_backend/internals/features/training/route"
	helperSupabase "sportan_backend/internals/helpers/supabase"
	"sportan_backend/internals/middlewares"
	authMiddleware "sportan_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// shared clients
	adminClient := helperSupabase.NewAdminClient(configs.SupabaseURL, configs.SupabaseServiceKey)
	parentSvc := coachingService.NewParentService(db, adminClient)
	reportSvc := aiService.NewReportService(db, aiService.NewProviderClient())

	log.Println("[INFO] Fetching provider JWKS...")
	jwks := authMiddleware.NewJWKS(configs.SupabaseJWKSURL)

	// ===================== AUTHENTICATED API =====================
	api := app.Group("/api",
		middlewares.GlobalRateLimiter(),
		authMiddleware.AuthJWT(jwks),
	)

	log.Println("[INFO] Mounting Identity routes...")
	identityRoute.IdentityRoutes(api, db)

	log.Println("[INFO] Mounting Coaching routes...")
	coachingRoute.CoachingRoutes(api, db, parentSvc)

	log.Println("[INFO] Mounting Training routes...")
	trainingRoute.TrainingRoutes(api, db)

	log.Println("[INFO] Mounting AI routes...")
	aiRoute.AIRoutes(api, db, reportSvc)

	// ===================== SYSTEM (cron) =====================
	log.Println("[INFO] Mounting System routes...")
	system := app.Group("/api/system", authMiddleware.SystemToken(configs.SystemCronToken))
	trainingRoute.SystemTrainingRoutes(system, db)
}
