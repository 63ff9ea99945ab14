package services

import (
	"strings"
	"testing"

	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestAdminUpdate_Validation(t *testing.T) {
	svc := NewUserService(nil)
	admin := &models.User{Name: "Root Admin", Role: models.RoleAdmin}
	target := uuid.New()

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.AdminUpdate(admin, target, &dto.AdminUpdateUserRequest{Name: strPtr("  ")})
		assert.EqualError(t, err, "please add a name of at most 50 characters")
	})

	t.Run("name too long rejected", func(t *testing.T) {
		_, err := svc.AdminUpdate(admin, target, &dto.AdminUpdateUserRequest{Name: strPtr(strings.Repeat("x", 51))})
		assert.EqualError(t, err, "please add a name of at most 50 characters")
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		_, err := svc.AdminUpdate(admin, target, &dto.AdminUpdateUserRequest{Email: strPtr("not-an-email")})
		assert.EqualError(t, err, "please add a valid email")
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := svc.AdminUpdate(admin, target, &dto.AdminUpdateUserRequest{Role: strPtr("moderator")})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestDelete_SelfDeleteForbidden(t *testing.T) {
	svc := NewUserService(nil)
	id := uuid.New()

	err := svc.Delete(id, id)
	assert.ErrorIs(t, err, ErrSelfDelete)
}
