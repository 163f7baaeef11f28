package dto

import (
	"time"

	"sportan_backend/internals/features/coaching/model"
)

// ============================
// Group DTOs
// ============================

type GroupDTO struct {
	ID          string    `json:"id"`
	CoachID     string    `json:"coach_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateGroupRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description"`
}

// Partial update: nil means "leave the field untouched".
type UpdateGroupRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

func ToGroupDTO(m model.GroupModel) GroupDTO {
	return GroupDTO{
		ID:          m.GroupID.String(),
		CoachID:     m.GroupCoachID.String(),
		Name:        m.GroupName,
		Description: m.GroupDescription,
		CreatedAt:   m.GroupCreatedAt,
	}
}

func ToGroupDTOs(ms []model.GroupModel) []GroupDTO {
	out := make([]GroupDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGroupDTO(m))
	}
	return out
}

// ============================
// Athlete management DTOs
// ============================

type CreateAthleteRequest struct {
	FullName string  `json:"full_name" validate:"required,min=1,max=255"`
	DOB      *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Notes    *string `json:"notes"`
}

type UpdateAthleteRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	DOB      *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Notes    *string `json:"notes"`
}

// ============================
// Parent management DTOs
// ============================

type CreateParentRequest struct {
	FullName  string `json:"full_name" validate:"required,min=1,max=255"`
	Email     string `json:"email" validate:"required,email"`
	AthleteID string `json:"athlete_id" validate:"required,uuid4"`
}

type UpdateParentRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
}
