// internals/middlewares/auth/jwt_auth.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Locals keys set by AuthJWT for downstream resolvers.
const (
	LocJWTClaims = "jwt_claims"
	LocUserID    = "user_id"
)

// NewJWKS fetches and caches the identity provider's signing keys.
// Supabase rotates keys rarely; an hourly refresh plus refresh-on-unknown-kid
// keeps the cache warm without hammering the endpoint.
func NewJWKS(jwksURL string) *keyfunc.JWKS {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		RefreshInterval:   time.Hour,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Printf("[ERROR] JWKS refresh: %v", err)
		},
	})
	if err != nil {
		log.Fatalf("❌ JWKS fetch failed: %v", err)
	}
	return jwks
}

// AuthJWT verifies the bearer token against the provider JWKS and stores the
// raw claims for the principal resolver. It does not touch the database.
func AuthJWT(jwks *keyfunc.JWKS) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, jwks.Keyfunc)
		if err != nil || !tok.Valid {
			log.Printf("[INFO] invalid token: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(LocJWTClaims, claims)
		if sub, ok := claims["sub"].(string); ok && sub != "" {
			c.Locals(LocUserID, sub)
		}

		return c.Next()
	}
}
