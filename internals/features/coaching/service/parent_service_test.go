package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportan_backend/internals/features/coaching/dto"
)

// stubAuth stands in for the provider admin API.
type stubAuth struct {
	created   []uuid.UUID
	deleted   []uuid.UUID
	createErr error
	deleteErr error
}

func (s *stubAuth) CreateUser(_ context.Context, _, _, _ string) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	id := uuid.New()
	s.created = append(s.created, id)
	return id, nil
}

func (s *stubAuth) DeleteUser(_ context.Context, id uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestCreateParent(t *testing.T) {
	db := newTestDB(t)
	coach := seedCoach(t, db, "coach@test.dev")
	group := seedGroup(t, db, coach, "U15")
	athlete := seedAthleteInGroup(t, db, coach, group, "Mia")

	auth := &stubAuth{}
	svc := NewParentService(db, auth)

	parent, err := svc.CreateParent(context.Background(), coach.CoachID, dto.CreateParentRequest{
		FullName:  "Pia",
		Email:     "pia@test.dev",
		AthleteID: athlete.AthleteID.String(),
	})
	require.NoError(t, err)
	require.Len(t, auth.created, 1)
	assert.Equal(t, auth.created[0], parent.ParentID)
	assert.Equal(t, athlete.AthleteID, parent.ParentAthleteID)
}

func TestCreateParentProviderFailure(t *testing.T) {
	db := newTestDB(t)
	coach := seedCoach(t, db, "coach@test.dev")
	group := seedGroup(t, db, coach, "U15")
	athlete := seedAthleteInGroup(t, db, coach, group, "Mia")

	svc := NewParentService(db, &stubAuth{createErr: errors.New("gotrue down")})

	_, err := svc.CreateParent(context.Background(), coach.CoachID, dto.CreateParentRequest{
		FullName:  "Pia",
		Email:     "pia@test.dev",
		AthleteID: athlete.AthleteID.String(),
	})
	assert.Equal(t, fiber.StatusBadGateway, fiberCode(t, err))
}

func TestCreateParentSecondLinkConflictLeavesAuthUser(t *testing.T) {
	db := newTestDB(t)
	coach := seedCoach(t, db, "coach@test.dev")
	group := seedGroup(t, db, coach, "U15")
	athlete := seedAthleteInGroup(t, db, coach, group, "Mia")

	auth := &stubAuth{}
	svc := NewParentService(db, auth)

	_, err := svc.CreateParent(context.Background(), coach.CoachID, dto.CreateParentRequest{
		FullName: "Pia", Email: "pia@test.dev", AthleteID: athlete.AthleteID.String(),
	})
	require.NoError(t, err)

	_, err = svc.CreateParent(context.Background(), coach.CoachID, dto.CreateParentRequest{
		FullName: "Po", Email: "po@test.dev", AthleteID: athlete.AthleteID.String(),
	})
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// the second provider login was provisioned before the insert failed and
	// is not rolled back
	assert.Len(t, auth.created, 2)
}

func TestCreateParentForeignAthlete(t *testing.T) {
	db := newTestDB(t)
	owner := seedCoach(t, db, "owner@test.dev")
	other := seedCoach(t, db, "other@test.dev")
	group := seedGroup(t, db, owner, "U15")
	athlete := seedAthleteInGroup(t, db, owner, group, "Mia")

	svc := NewParentService(db, &stubAuth{})

	_, err := svc.CreateParent(context.Background(), other.CoachID, dto.CreateParentRequest{
		FullName: "Pia", Email: "pia@test.dev", AthleteID: athlete.AthleteID.String(),
	})
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestDeleteParentSurvivesProviderFailure(t *testing.T) {
	db := newTestDB(t)
	coach := seedCoach(t, db, "coach@test.dev")
	group := seedGroup(t, db, coach, "U15")
	athlete := seedAthleteInGroup(t, db, coach, group, "Mia")

	auth := &stubAuth{}
	svc := NewParentService(db, auth)

	parent, err := svc.CreateParent(context.Background(), coach.CoachID, dto.CreateParentRequest{
		FullName: "Pia", Email: "pia@test.dev", AthleteID: athlete.AthleteID.String(),
	})
	require.NoError(t, err)

	auth.deleteErr = errors.New("gotrue down")
	require.NoError(t, svc.DeleteParent(context.Background(), parent.ParentID))

	_, err = svc.GetParent(parent.ParentID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestGetAthleteParentNone(t *testing.T) {
	db := newTestDB(t)
	coach := seedCoach(t, db, "coach@test.dev")
	group := seedGroup(t, db, coach, "U15")
	athlete := seedAthleteInGroup(t, db, coach, group, "Mia")

	svc := NewParentService(db, &stubAuth{})

	parent, err := svc.GetAthleteParent(athlete.AthleteID, coach.CoachID)
	require.NoError(t, err)
	assert.Nil(t, parent)
}

func TestUpdateParent(t *testing.T) {
	db := newTestDB(t)
	coach := seedCoach(t, db, "coach@test.dev")
	group := seedGroup(t, db, coach, "U15")
	athlete := seedAthleteInGroup(t, db, coach, group, "Mia")

	svc := NewParentService(db, &stubAuth{})
	parent, err := svc.CreateParent(context.Background(), coach.CoachID, dto.CreateParentRequest{
		FullName: "Pia", Email: "pia@test.dev", AthleteID: athlete.AthleteID.String(),
	})
	require.NoError(t, err)

	phone := "+4912345678"
	updated, err := svc.UpdateParent(parent.ParentID, dto.UpdateParentRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, parent.ParentID, updated.ParentID)

	got, err := svc.GetParent(parent.ParentID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentPhone)
	assert.Equal(t, phone, *got.ParentPhone)
	assert.Equal(t, "Pia", got.ParentFullName)
}
