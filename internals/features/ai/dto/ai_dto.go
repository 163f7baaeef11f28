package dto

import (
	"time"

	"sportan_backend/internals/features/ai/model"
)

type TalentReportDTO struct {
	ID        string    `json:"id"`
	AthleteID string    `json:"athlete_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type WeeklyInsightDTO struct {
	ID        string    `json:"id"`
	AthleteID string    `json:"athlete_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTalentReportDTO(m model.TalentReportModel) TalentReportDTO {
	return TalentReportDTO{
		ID:        m.TalentReportID.String(),
		AthleteID: m.TalentReportAthleteID.String(),
		Text:      m.TalentReportText,
		CreatedAt: m.TalentReportCreatedAt,
	}
}

func ToWeeklyInsightDTO(m model.WeeklyInsightModel) WeeklyInsightDTO {
	return WeeklyInsightDTO{
		ID:        m.WeeklyInsightID.String(),
		AthleteID: m.WeeklyInsightAthleteID.String(),
		Text:      m.WeeklyInsightText,
		CreatedAt: m.WeeklyInsightCreatedAt,
	}
}
