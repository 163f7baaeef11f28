package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoachModel owns groups and, through them, athletes. Coaches sign up through
// the identity provider, so coach_id equals the provider's subject id.
type CoachModel struct {
	CoachID        uuid.UUID `gorm:"column:coach_id;primaryKey;type:uuid"`
	CoachEmail     string    `gorm:"column:coach_email;type:varchar(255);uniqueIndex;not null"`
	CoachFullName  string    `gorm:"column:coach_full_name;type:varchar(255);not null"`
	CoachCreatedAt time.Time `gorm:"column:coach_created_at;autoCreateTime"`
}

func (CoachModel) TableName() string { return "coaches" }

func (m *CoachModel) BeforeCreate(tx *gorm.DB) error {
	if m.CoachID == uuid.Nil {
		m.CoachID = uuid.New()
	}
	return nil
}

// AthleteModel belongs to exactly one coach, set at creation and never moved.
type AthleteModel struct {
	AthleteID        uuid.UUID  `gorm:"column:athlete_id;primaryKey;type:uuid"`
	AthleteCoachID   uuid.UUID  `gorm:"column:athlete_coach_id;type:uuid;not null;index"`
	AthleteFullName  string     `gorm:"column:athlete_full_name;type:varchar(255);not null"`
	AthleteDOB       *time.Time `gorm:"column:athlete_dob;type:date"`
	AthleteNotes     *string    `gorm:"column:athlete_notes;type:text"`
	AthleteCreatedAt time.Time  `gorm:"column:athlete_created_at;autoCreateTime"`
}

func (AthleteModel) TableName() string { return "athletes" }

func (m *AthleteModel) BeforeCreate(tx *gorm.DB) error {
	if m.AthleteID == uuid.Nil {
		m.AthleteID = uuid.New()
	}
	return nil
}

// ParentModel: parent_id equals the identity provider's subject id for the
// parent login, so the token sub resolves straight to this row. One parent per
// athlete, enforced by the unique index on parent_athlete_id.
type ParentModel struct {
	ParentID        uuid.UUID `gorm:"column:parent_id;primaryKey;type:uuid"`
	ParentAthleteID uuid.UUID `gorm:"column:parent_athlete_id;type:uuid;uniqueIndex;not null"`
	ParentEmail     string    `gorm:"column:parent_email;type:varchar(255);uniqueIndex;not null"`
	ParentFullName  string    `gorm:"column:parent_full_name;type:varchar(255);not null"`
	ParentPhone     *string   `gorm:"column:parent_phone;type:varchar(32)"`
	ParentCreatedAt time.Time `gorm:"column:parent_created_at;autoCreateTime"`
}

func (ParentModel) TableName() string { return "parents" }
