package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkoutStatus string

const (
	StatusPending   WorkoutStatus = "pending"
	StatusCompleted WorkoutStatus = "completed"
	StatusSkipped   WorkoutStatus = "skipped"
)

func (s WorkoutStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// AssignedWorkoutModel is the plan: what the coach wants done and when.
type AssignedWorkoutModel struct {
	AssignedWorkoutID            uuid.UUID     `gorm:"column:assigned_workout_id;primaryKey;type:uuid"`
	AssignedWorkoutAthleteID     uuid.UUID     `gorm:"column:assigned_workout_athlete_id;type:uuid;not null;index"`
	AssignedWorkoutScheduledDate time.Time     `gorm:"column:assigned_workout_scheduled_date;type:date;not null"`
	AssignedWorkoutTitle         string        `gorm:"column:assigned_workout_title;type:varchar(255);not null"`
	AssignedWorkoutDescription   *string       `gorm:"column:assigned_workout_description;type:text"`
	AssignedWorkoutStatus        WorkoutStatus `gorm:"column:assigned_workout_status;type:varchar(20);not null;default:pending;index"`
	AssignedWorkoutCreatedAt     time.Time     `gorm:"column:assigned_workout_created_at;autoCreateTime"`
}

func (AssignedWorkoutModel) TableName() string { return "assigned_workouts" }

func (m *AssignedWorkoutModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssignedWorkoutID == uuid.Nil {
		m.AssignedWorkoutID = uuid.New()
	}
	if m.AssignedWorkoutStatus == "" {
		m.AssignedWorkoutStatus = StatusPending
	}
	return nil
}

// WorkoutModel is the execution record. The unique index on
// workout_assigned_workout_id keeps it at one completion per plan (NULLs are
// exempt, so free workouts can pile up).
type WorkoutModel struct {
	WorkoutID                uuid.UUID         `gorm:"column:workout_id;primaryKey;type:uuid"`
	WorkoutAthleteID         uuid.UUID         `gorm:"column:workout_athlete_id;type:uuid;not null;index"`
	WorkoutAssignedWorkoutID *uuid.UUID        `gorm:"column:workout_assigned_workout_id;type:uuid;uniqueIndex"`
	WorkoutDate              time.Time         `gorm:"column:workout_date;type:date;not null"`
	WorkoutTitle             string            `gorm:"column:workout_title;type:varchar(255);not null"`
	WorkoutNotes             *string           `gorm:"column:workout_notes;type:text"`
	WorkoutMetrics           datatypes.JSONMap `gorm:"column:workout_metrics"`
	WorkoutCreatedAt         time.Time         `gorm:"column:workout_created_at;autoCreateTime"`
}

func (WorkoutModel) TableName() string { return "workouts" }

func (m *WorkoutModel) BeforeCreate(tx *gorm.DB) error {
	if m.WorkoutID == uuid.Nil {
		m.WorkoutID = uuid.New()
	}
	return nil
}
