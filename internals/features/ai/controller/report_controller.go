package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/ai/dto"
	"sportan_backend/internals/features/ai/service"
	coachingService "sportan_backend/internals/features/coaching/service"
	identityService "sportan_backend/internals/features/identity/service"
	helper "sportan_backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Reports *service.ReportService
}

func NewReportController(db *gorm.DB, reports *service.ReportService) *ReportController {
	return &ReportController{DB: db, Reports: reports}
}

// =======================
// 🤖 POST /coach/athletes/:athleteId/ai/talent-recognition
// =======================
func (ctrl *ReportController) GenerateTalentReport(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	report, err := ctrl.Reports.GenerateTalentReport(c.UserContext(), athleteID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Talent report generated", dto.ToTalentReportDTO(report))
}

// =======================
// 🔍 GET /coach/athletes/:athleteId/ai/talent-recognition - latest
// =======================
func (ctrl *ReportController) GetTalentReport(c *fiber.Ctx) error {
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

	report, err := ctrl.Reports.GetLatestTalentReport(athleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Talent report", dto.ToTalentReportDTO(report))
}

// =======================
// 🤖 POST /coach/athletes/:athleteId/ai/weekly-insights
// =======================
func (ctrl *ReportController) GenerateWeeklyInsights(c *fiber.Ctx) error {
	coach, err := identityService.RequireCoach(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	athleteID, err := uuid.Parse(c.Params("athleteId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid athlete id")
	}

	insight, err := ctrl.Reports.GenerateWeeklyInsights(c.UserContext(), athleteID, coach.CoachID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Weekly insight generated", dto.ToWeeklyInsightDTO(insight))
}

// =======================
// 🔍 GET /coach/athletes/:athleteId/ai/weekly-insights - latest
// =======================
func (ctrl *ReportController) GetWeeklyInsight(c *fiber.Ctx) error {
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

	insight, err := ctrl.Reports.GetLatestWeeklyInsight(athleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Weekly insight", dto.ToWeeklyInsightDTO(insight))
}

// =======================
// 🔍 GET /parent/athlete/ai/talent-recognition - latest for the linked child
// =======================
func (ctrl *ReportController) GetChildTalentReport(c *fiber.Ctx) error {
	parent, err := identityService.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	report, err := ctrl.Reports.GetLatestTalentReport(parent.ParentAthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Talent report", dto.ToTalentReportDTO(report))
}

// =======================
// 🔍 GET /parent/athlete/ai/weekly-insights - latest for the linked child
// =======================
func (ctrl *ReportController) GetChildWeeklyInsight(c *fiber.Ctx) error {
	parent, err := identityService.RequireParent(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	insight, err := ctrl.Reports.GetLatestWeeklyInsight(parent.ParentAthleteID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Weekly insight", dto.ToWeeklyInsightDTO(insight))
}
