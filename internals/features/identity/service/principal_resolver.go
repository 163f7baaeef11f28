// internals/features/identity/service/principal_resolver.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportan_backend/internals/features/identity/model"
	authMiddleware "sportan_backend/internals/middlewares/auth"
)

const (
	RoleCoach   = "coach"
	RoleAthlete = "athlete"
	RoleParent  = "parent"
)

const locPrincipal = "principal"

// Principal is the resolved, role-tagged identity of the caller. Exactly one
// of the profile pointers is non-nil, matching Role.
type Principal struct {
	Role    string
	Coach   *model.CoachModel
	Athlete *model.AthleteModel
	Parent  *model.ParentModel
}

// roleFromClaims applies the provider's precedence: app_metadata.role first,
// then user_metadata.role, then the top-level role claim.
func roleFromClaims(claims jwt.MapClaims) string {
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if r, ok := meta["role"].(string); ok && r != "" {
			return r
		}
	}
	if meta, ok := claims["user_metadata"].(map[string]interface{}); ok {
		if r, ok := meta["role"].(string); ok && r != "" {
			return r
		}
	}
	if r, ok := claims["role"].(string); ok && r != "" {
		return r
	}
	return ""
}

// ResolvePrincipal turns verified token claims into a role-scoped profile.
// 401 when sub is missing or malformed, 403 when no role or an unknown role
// is present, 404 when the role is known but the profile row does not exist.
func ResolvePrincipal(db *gorm.DB, claims jwt.MapClaims) (*Principal, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token: missing sub")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token: sub is not a valid UUID")
	}

	role := roleFromClaims(claims)
	if role == "" {
		return nil, fiber.NewError(fiber.StatusForbidden, "User role not found in token")
	}

	switch role {
	case RoleCoach:
		var coach model.CoachModel
		if err := db.Where("coach_id = ?", userID).First(&coach).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Coach profile not found")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load coach profile")
		}
		return &Principal{Role: RoleCoach, Coach: &coach}, nil

	case RoleAthlete:
		var athlete model.AthleteModel
		if err := db.Where("athlete_id = ?", userID).First(&athlete).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Athlete profile not found")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load athlete profile")
		}
		return &Principal{Role: RoleAthlete, Athlete: &athlete}, nil

	case RoleParent:
		var parent model.ParentModel
		if err := db.Where("parent_id = ?", userID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Parent profile not found")
			}
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load parent profile")
		}
		return &Principal{Role: RoleParent, Parent: &parent}, nil

	default:
		return nil, fiber.NewError(fiber.StatusForbidden, "Unknown role: "+role)
	}
}

// CurrentPrincipal resolves once per request and caches the result in Locals.
func CurrentPrincipal(c *fiber.Ctx, db *gorm.DB) (*Principal, error) {
	if p, ok := c.Locals(locPrincipal).(*Principal); ok {
		return p, nil
	}
	claims, ok := c.Locals(authMiddleware.LocJWTClaims).(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	p, err := ResolvePrincipal(db, claims)
	if err != nil {
		return nil, err
	}
	c.Locals(locPrincipal, p)
	return p, nil
}

// ============================
// Role guards
// ============================

func RequireCoach(c *fiber.Ctx, db *gorm.DB) (*model.CoachModel, error) {
	p, err := CurrentPrincipal(c, db)
	if err != nil {
		return nil, err
	}
	if p.Role != RoleCoach || p.Coach == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized as Coach")
	}
	return p.Coach, nil
}

func RequireAthlete(c *fiber.Ctx, db *gorm.DB) (*model.AthleteModel, error) {
	p, err := CurrentPrincipal(c, db)
	if err != nil {
		return nil, err
	}
	if p.Role != RoleAthlete || p.Athlete == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized as Athlete")
	}
	return p.Athlete, nil
}

func RequireParent(c *fiber.Ctx, db *gorm.DB) (*model.ParentModel, error) {
	p, err := CurrentPrincipal(c, db)
	if err != nil {
		return nil, err
	}
	if p.Role != RoleParent || p.Parent == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized as Parent")
	}
	return p.Parent, nil
}
