package authz

import (
	"errors"

	"github.com/creatorhub/creator-platform/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserID extracts the acting user's UUID from JWT claims in context.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// Role extracts the acting user's role claim, defaulting to "user".
func Role(c *fiber.Ctx) string {
	claims, err := tokenClaims(c)
	if err != nil {
		return models.RoleUser
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		return role
	}
	return models.RoleUser
}

// Email extracts the email claim.
func Email(c *fiber.Ctx) string {
	claims, err := tokenClaims(c)
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// OwnerOrRole reports whether the actor owns the resource or holds the
// given role. Every per-resource authorization check in the codebase goes
// through this predicate.
func OwnerOrRole(actorID uuid.UUID, actorRole string, ownerID uuid.UUID, role string) bool {
	return actorID == ownerID || actorRole == role
}

// OwnerOrAdmin is the common case of OwnerOrRole.
func OwnerOrAdmin(actorID uuid.UUID, actorRole string, ownerID uuid.UUID) bool {
	return OwnerOrRole(actorID, actorRole, ownerID, models.RoleAdmin)
}
