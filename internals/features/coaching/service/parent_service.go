// internals/features/coaching/service/parent_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/coaching/dto"
	identityModel "sportan_backend/internals/features/identity/model"
	helper "sportan_backend/internals/helpers"
)

// AuthAdmin is the slice of the identity provider's admin API this service
// needs. The real implementation lives in helpers/supabase.
type AuthAdmin interface {
	CreateUser(ctx context.Context, email, password, role string) (uuid.UUID, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ParentService struct {
	DB   *gorm.DB
	Auth AuthAdmin
}

func NewParentService(db *gorm.DB, auth AuthAdmin) *ParentService {
	return &ParentService{DB: db, Auth: auth}
}

// CreateParent provisions the login first, then inserts the local row keyed
// by the provider's subject id. The provider call commits on its own; if the
// local insert fails afterwards the provider identity is left orphaned. That
// gap is deliberate, not silently compensated.
func (s *ParentService) CreateParent(ctx context.Context, coachID uuid.UUID, req dto.CreateParentRequest) (identityModel.ParentModel, error) {
	athleteID, err := uuid.Parse(req.AthleteID)
	if err != nil {
		return identityModel.ParentModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid athlete_id")
	}
	if _, err := GetAthlete(s.DB, athleteID, coachID); err != nil {
		return identityModel.ParentModel{}, err
	}

	authID, err := s.Auth.CreateUser(ctx, req.Email, randomTempPassword(), "parent")
	if err != nil {
		log.Printf("[ERROR] parent auth provisioning: %v", err)
		return identityModel.ParentModel{}, fiber.NewError(fiber.StatusBadGateway, "Failed to create auth user")
	}

	parent := identityModel.ParentModel{
		ParentID:        authID,
		ParentAthleteID: athleteID,
		ParentEmail:     req.Email,
		ParentFullName:  req.FullName,
	}
	if err := s.DB.Create(&parent).Error; err != nil {
		// auth user stays behind on purpose, see above
		log.Printf("[ERROR] parent insert after auth create (auth id %s left orphaned): %v", authID, err)
		if helper.IsUniqueViolation(err) {
			return identityModel.ParentModel{}, fiber.NewError(fiber.StatusConflict, "Parent already exists for this athlete or email")
		}
		return identityModel.ParentModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to create parent")
	}
	return parent, nil
}

func (s *ParentService) GetParent(parentID uuid.UUID) (identityModel.ParentModel, error) {
	var parent identityModel.ParentModel
	err := s.DB.Where("parent_id = ?", parentID).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identityModel.ParentModel{}, fiber.NewError(fiber.StatusNotFound, "Parent not found")
		}
		return identityModel.ParentModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to load parent")
	}
	return parent, nil
}

func (s *ParentService) UpdateParent(parentID uuid.UUID, req dto.UpdateParentRequest) (identityModel.ParentModel, error) {
	parent, err := s.GetParent(parentID)
	if err != nil {
		return identityModel.ParentModel{}, err
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["parent_full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["parent_email"] = *req.Email
	}
	if req.Phone != nil {
		updates["parent_phone"] = *req.Phone
	}
	if len(updates) == 0 {
		return parent, nil
	}

	if err := s.DB.Model(&parent).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return identityModel.ParentModel{}, fiber.NewError(fiber.StatusConflict, "Email already in use")
		}
		return identityModel.ParentModel{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to update parent")
	}
	return parent, nil
}

// DeleteParent removes the provider login best-effort; a provider failure is
// logged and the local row is deleted regardless.
func (s *ParentService) DeleteParent(ctx context.Context, parentID uuid.UUID) error {
	parent, err := s.GetParent(parentID)
	if err != nil {
		return err
	}

	if err := s.Auth.DeleteUser(ctx, parent.ParentID); err != nil {
		log.Printf("[WARNING] parent auth delete failed for %s: %v", parent.ParentID, err)
	}

	if err := s.DB.Where("parent_id = ?", parent.ParentID).
		Delete(&identityModel.ParentModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete parent")
	}
	return nil
}

// GetAthleteParent returns (nil, nil) when no parent is linked; "no parent"
// is not an error at this layer.
func (s *ParentService) GetAthleteParent(athleteID, coachID uuid.UUID) (*identityModel.ParentModel, error) {
	if _, err := GetAthlete(s.DB, athleteID, coachID); err != nil {
		return nil, err
	}

	var parent identityModel.ParentModel
	err := s.DB.Where("parent_athlete_id = ?", athleteID).First(&parent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load parent")
	}
	return &parent, nil
}

func randomTempPassword() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the host is broken; bail loudly
		log.Fatalf("random source unavailable: %v", err)
	}
	return "Tmp-" + base64.RawURLEncoding.EncodeToString(buf) + "9!"
}
