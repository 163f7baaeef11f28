package dto

import (
	"time"

	"sportan_backend/internals/features/identity/model"
)

const dateLayout = "2006-01-02"

// ============================
// Response DTOs
// ============================

type CoachDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type AthleteDTO struct {
	ID        string    `json:"id"`
	CoachID   string    `json:"coach_id"`
	FullName  string    `json:"full_name"`
	DOB       *string   `json:"dob"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type ParentDTO struct {
	ID        string    `json:"id"`
	AthleteID string    `json:"athlete_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Converters
// ============================

func ToCoachDTO(m model.CoachModel) CoachDTO {
	return CoachDTO{
		ID:        m.CoachID.String(),
		Email:     m.CoachEmail,
		FullName:  m.CoachFullName,
		CreatedAt: m.CoachCreatedAt,
	}
}

func ToAthleteDTO(m model.AthleteModel) AthleteDTO {
	var dob *string
	if m.AthleteDOB != nil {
		s := m.AthleteDOB.Format(dateLayout)
		dob = &s
	}
	return AthleteDTO{
		ID:        m.AthleteID.String(),
		CoachID:   m.AthleteCoachID.String(),
		FullName:  m.AthleteFullName,
		DOB:       dob,
		Notes:     m.AthleteNotes,
		CreatedAt: m.AthleteCreatedAt,
	}
}

func ToAthleteDTOs(ms []model.AthleteModel) []AthleteDTO {
	out := make([]AthleteDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAthleteDTO(m))
	}
	return out
}

func ToParentDTO(m model.ParentModel) ParentDTO {
	return ParentDTO{
		ID:        m.ParentID.String(),
		AthleteID: m.ParentAthleteID.String(),
		Email:     m.ParentEmail,
		FullName:  m.ParentFullName,
		Phone:     m.ParentPhone,
		CreatedAt: m.ParentCreatedAt,
	}
}
