package dto

import (
	"time"

	"gorm.io/datatypes"

	"sportan_backend/internals/features/training/model"
)

const dateLayout = "2006-01-02"

// =======================
// Assigned workouts
// =======================

type AssignedWorkoutDTO struct {
	ID            string    `json:"id"`
	AthleteID     string    `json:"athlete_id"`
	ScheduledDate string    `json:"scheduled_date"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateAssignedWorkoutRequest struct {
	Title         string  `json:"title" validate:"required,min=1,max=255"`
	Description   *string `json:"description" validate:"omitempty,max=5000"`
	ScheduledDate string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
}

type UpdateAssignedWorkoutStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed skipped"`
}

func ToAssignedWorkoutDTO(m model.AssignedWorkoutModel) AssignedWorkoutDTO {
	return AssignedWorkoutDTO{
		ID:            m.AssignedWorkoutID.String(),
		AthleteID:     m.AssignedWorkoutAthleteID.String(),
		ScheduledDate: m.AssignedWorkoutScheduledDate.Format(dateLayout),
		Title:         m.AssignedWorkoutTitle,
		Description:   m.AssignedWorkoutDescription,
		Status:        string(m.AssignedWorkoutStatus),
		CreatedAt:     m.AssignedWorkoutCreatedAt,
	}
}

func ToAssignedWorkoutDTOs(ms []model.AssignedWorkoutModel) []AssignedWorkoutDTO {
	out := make([]AssignedWorkoutDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAssignedWorkoutDTO(m))
	}
	return out
}

// =======================
// Logged workouts
// =======================

type WorkoutDTO struct {
	ID                string            `json:"id"`
	AthleteID         string            `json:"athlete_id"`
	AssignedWorkoutID *string           `json:"assigned_workout_id"`
	Date              string            `json:"date"`
	Title             string            `json:"title"`
	Notes             *string           `json:"notes"`
	Metrics           datatypes.JSONMap `json:"metrics"`
	CreatedAt         time.Time         `json:"created_at"`
}

type CreateWorkoutRequest struct {
	AthleteID         string            `json:"athlete_id" validate:"required,uuid4"`
	Title             string            `json:"title" validate:"required,min=1,max=255"`
	Date              string            `json:"date" validate:"required,datetime=2006-01-02"`
	Notes             *string           `json:"notes" validate:"omitempty,max=5000"`
	Metrics           datatypes.JSONMap `json:"metrics"`
	AssignedWorkoutID *string           `json:"assigned_workout_id" validate:"omitempty,uuid4"`
}

type UpdateWorkoutRequest struct {
	Title   *string           `json:"title" validate:"omitempty,min=1,max=255"`
	Date    *string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes   *string           `json:"notes" validate:"omitempty,max=5000"`
	Metrics datatypes.JSONMap `json:"metrics"`
}

func ToWorkoutDTO(m model.WorkoutModel) WorkoutDTO {
	var assignedID *string
	if m.WorkoutAssignedWorkoutID != nil {
		s := m.WorkoutAssignedWorkoutID.String()
		assignedID = &s
	}
	return WorkoutDTO{
		ID:                m.WorkoutID.String(),
		AthleteID:         m.WorkoutAthleteID.String(),
		AssignedWorkoutID: assignedID,
		Date:              m.WorkoutDate.Format(dateLayout),
		Title:             m.WorkoutTitle,
		Notes:             m.WorkoutNotes,
		Metrics:           m.WorkoutMetrics,
		CreatedAt:         m.WorkoutCreatedAt,
	}
}

func ToWorkoutDTOs(ms []model.WorkoutModel) []WorkoutDTO {
	out := make([]WorkoutDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToWorkoutDTO(m))
	}
	return out
}

// =======================
// Summary
// =======================

type AthleteSummaryDTO struct {
	TotalWorkouts     int64   `json:"total_workouts"`
	WorkoutsThisWeek  int64   `json:"workouts_this_week"`
	WorkoutsThisMonth int64   `json:"workouts_this_month"`
	LastWorkoutDate   *string `json:"last_workout_date"`
}
