package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reports are append-only; "latest" is resolved by created_at at query time.

type TalentReportModel struct {
	TalentReportID        uuid.UUID `gorm:"column:talent_report_id;primaryKey;type:uuid"`
	TalentReportAthleteID uuid.UUID `gorm:"column:talent_report_athlete_id;type:uuid;not null;index"`
	TalentReportText      string    `gorm:"column:talent_report_text;type:text;not null"`
	TalentReportCreatedAt time.Time `gorm:"column:talent_report_created_at;autoCreateTime"`
}

func (TalentReportModel) TableName() string { return "talent_reports" }

func (m *TalentReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.TalentReportID == uuid.Nil {
		m.TalentReportID = uuid.New()
	}
	return nil
}

type WeeklyInsightModel struct {
	WeeklyInsightID        uuid.UUID `gorm:"column:weekly_insight_id;primaryKey;type:uuid"`
	WeeklyInsightAthleteID uuid.UUID `gorm:"column:weekly_insight_athlete_id;type:uuid;not null;index"`
	WeeklyInsightText      string    `gorm:"column:weekly_insight_text;type:text;not null"`
	WeeklyInsightCreatedAt time.Time `gorm:"column:weekly_insight_created_at;autoCreateTime"`
}

func (WeeklyInsightModel) TableName() string { return "weekly_insights" }

func (m *WeeklyInsightModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyInsightID == uuid.Nil {
		m.WeeklyInsightID = uuid.New()
	}
	return nil
}
