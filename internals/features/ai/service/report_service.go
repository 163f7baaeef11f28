// internals/features/ai/service/report_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/ai/model"
	coachingService "sportan_backend/internals/features/coaching/service"
	trainingModel "sportan_backend/internals/features/training/model"
)

const (
	dateLayout = "2006-01-02"

	// Stored verbatim when the weekly window is empty; no provider call is
	// made in that case.
	noWeeklyDataText = "No training data recorded for the last 7 days."

	talentSystemPrompt = "You are an experienced youth sports talent scout. " +
		"Write a concise talent assessment of the athlete based on their training history. " +
		"Cover consistency, workload and notable strengths. Address the coach, not the athlete."

	weeklySystemPrompt = "You are a supportive sports coach assistant. " +
		"Summarize the athlete's past week of training in a few short paragraphs " +
		"a parent can understand. Be encouraging and concrete."
)

type ReportService struct {
	DB  *gorm.DB
	Gen TextGenerator
}

func NewReportService(db *gorm.DB, gen TextGenerator) *ReportService {
	return &ReportService{DB: db, Gen: gen}
}

// GenerateTalentReport builds a prompt from the athlete's full training
// history, asks the provider, and appends the result. Reports are never
// overwritten; "latest" wins at read time.
func (s *ReportService) GenerateTalentReport(ctx context.Context, athleteID, coachID uuid.UUID) (model.TalentReportModel, error) {
	athlete, err := coachingService.GetAthlete(s.DB, athleteID, coachID)
	if err != nil {
		return model.TalentReportModel{}, err
	}

	var workouts []trainingModel.WorkoutModel
	if err := s.DB.Where("workout_athlete_id = ?", athleteID).
		Order("workout_date ASC").
		Find(&workouts).Error; err != nil {
		return model.TalentReportModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load training history")
	}

	prompt := fmt.Sprintf("Athlete: %s\nTotal logged workouts: %d\n\nTraining history:\n%s",
		athlete.AthleteFullName, len(workouts), formatWorkouts(workouts))

	text, err := s.generate(ctx, talentSystemPrompt, prompt)
	if err != nil {
		return model.TalentReportModel{}, err
	}

	report := model.TalentReportModel{
		TalentReportAthleteID: athleteID,
		TalentReportText:      text,
	}
	if err := s.DB.Create(&report).Error; err != nil {
		return model.TalentReportModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to save report")
	}
	return report, nil
}

// GenerateWeeklyInsights looks at the last seven days (UTC). An empty window
// stores the fixed no-data text and skips the provider entirely.
func (s *ReportService) GenerateWeeklyInsights(ctx context.Context, athleteID, coachID uuid.UUID) (model.WeeklyInsightModel, error) {
	athlete, err := coachingService.GetAthlete(s.DB, athleteID, coachID)
	if err != nil {
		return model.WeeklyInsightModel{}, err
	}

	// Date-granular window, inclusive at exactly seven days back.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	since := today.AddDate(0, 0, -7)
	var workouts []trainingModel.WorkoutModel
	if err := s.DB.Where("workout_athlete_id = ? AND workout_date >= ?", athleteID, since).
		Order("workout_date ASC").
		Find(&workouts).Error; err != nil {
		return model.WeeklyInsightModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load training history")
	}

	var text string
	if len(workouts) == 0 {
		text = noWeeklyDataText
	} else {
		prompt := fmt.Sprintf("Athlete: %s\nWorkouts in the last 7 days: %d\n\n%s",
			athlete.AthleteFullName, len(workouts), formatWorkouts(workouts))
		text, err = s.generate(ctx, weeklySystemPrompt, prompt)
		if err != nil {
			return model.WeeklyInsightModel{}, err
		}
	}

	insight := model.WeeklyInsightModel{
		WeeklyInsightAthleteID: athleteID,
		WeeklyInsightText:      text,
	}
	if err := s.DB.Create(&insight).Error; err != nil {
		return model.WeeklyInsightModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to save insight")
	}
	return insight, nil
}

func (s *ReportService) GetLatestTalentReport(athleteID uuid.UUID) (model.TalentReportModel, error) {
	var report model.TalentReportModel
	err := s.DB.Where("talent_report_athlete_id = ?", athleteID).
		Order("talent_report_created_at DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.TalentReportModel{}, fiber.NewError(fiber.StatusNotFound, "No talent report found")
		}
		return model.TalentReportModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load report")
	}
	return report, nil
}

func (s *ReportService) GetLatestWeeklyInsight(athleteID uuid.UUID) (model.WeeklyInsightModel, error) {
	var insight model.WeeklyInsightModel
	err := s.DB.Where("weekly_insight_athlete_id = ?", athleteID).
		Order("weekly_insight_created_at DESC").
		First(&insight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.WeeklyInsightModel{}, fiber.NewError(fiber.StatusNotFound, "No weekly insight found")
		}
		return model.WeeklyInsightModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load insight")
	}
	return insight, nil
}

// generate wraps the provider call; failures and blank output both surface as
// an upstream error.
func (s *ReportService) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	text, err := s.Gen.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[ERROR] ai generation: %v", err)
		return "", fiber.NewError(fiber.StatusBadGateway, "AI generation failed")
	}
	if strings.TrimSpace(text) == "" {
		return "", fiber.NewError(fiber.StatusBadGateway, "AI generation returned empty response")
	}
	return text, nil
}

func formatWorkouts(workouts []trainingModel.WorkoutModel) string {
	if len(workouts) == 0 {
		return "(no workouts logged)"
	}
	var b strings.Builder
	for _, w := range workouts {
		b.WriteString("- ")
		b.WriteString(w.WorkoutDate.Format(dateLayout))
		b.WriteString(": ")
		b.WriteString(w.WorkoutTitle)
		if w.WorkoutNotes != nil && *w.WorkoutNotes != "" {
			b.WriteString(" - ")
			b.WriteString(*w.WorkoutNotes)
		}
		if len(w.WorkoutMetrics) > 0 {
			b.WriteString(" [")
			b.WriteString(formatMetrics(w.WorkoutMetrics))
			b.WriteString("]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatMetrics(metrics map[string]interface{}) string {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, metrics[k]))
	}
	return strings.Join(parts, ", ")
}
