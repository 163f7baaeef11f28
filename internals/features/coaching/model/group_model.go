package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID          uuid.UUID `gorm:"column:group_id;primaryKey;type:uuid"`
	GroupCoachID     uuid.UUID `gorm:"column:group_coach_id;type:uuid;not null;index"`
	GroupName        string    `gorm:"column:group_name;type:varchar(255);not null"`
	GroupDescription *string   `gorm:"column:group_description;type:text"`
	GroupCreatedAt   time.Time `gorm:"column:group_created_at;autoCreateTime"`
}

func (GroupModel) TableName() string { return "groups" }

func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.GroupID == uuid.Nil {
		m.GroupID = uuid.New()
	}
	return nil
}

// GroupAthleteModel is the pure membership association. Composite key, no
// surrogate id. Cascades are handled explicitly in the services.
type GroupAthleteModel struct {
	GroupAthleteGroupID   uuid.UUID `gorm:"column:group_athlete_group_id;primaryKey;type:uuid"`
	GroupAthleteAthleteID uuid.UUID `gorm:"column:group_athlete_athlete_id;primaryKey;type:uuid;index"`
	GroupAthleteJoinedAt  time.Time `gorm:"column:group_athlete_joined_at;autoCreateTime"`
}

func (GroupAthleteModel) TableName() string { return "group_athletes" }
