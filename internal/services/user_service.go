package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSelfDelete  = errors.New("cannot delete your own account")
	ErrInvalidRole = errors.New("role must be user or admin")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("CreditHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Update covers the self-edit path: role, credits and password are not
// reachable from here.
func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > 50 {
			return nil, errors.New("please add a name of at most 50 characters")
		}
		updates["name"] = name
	}
	if req.Email != nil {
		if !emailPattern.MatchString(*req.Email) {
			return nil, errors.New("please add a valid email")
		}
		updates["email"] = *req.Email
	}
	if req.Bio != nil {
		if len(*req.Bio) > 500 {
			return nil, errors.New("bio cannot be more than 500 characters")
		}
		updates["bio"] = *req.Bio
	}
	if req.ProfileImage != nil {
		updates["profile_image"] = *req.ProfileImage
	}
	if req.ProfileCompleted != nil {
		updates["profile_completed"] = *req.ProfileCompleted
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return s.Get(id)
}

// Delete removes a user. Deleting the acting account is a validation
// failure regardless of role.
func (s *UserService) Delete(actorID, id uuid.UUID) error {
	if actorID == id {
		return ErrSelfDelete
	}

	user, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}

// SetCredits overwrites the balance directly without a ledger entry;
// delta adjustments with history go through AdminUpdate.
func (s *UserService) SetCredits(id uuid.UUID, credits int) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Update("credits", credits).Error; err != nil {
		return nil, fmt.Errorf("failed to update credits: %w", err)
	}
	return s.Get(id)
}

// AdminUpdate is the privileged edit path. A credits value is applied as a
// delta against the current balance and recorded as one admin_adjustment
// transaction attributed to the acting admin.
func (s *UserService) AdminUpdate(actor *models.User, id uuid.UUID, req *dto.AdminUpdateUserRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" || len(name) > 50 {
			return nil, errors.New("please add a name of at most 50 characters")
		}
		updates["name"] = name
	}
	if req.Email != nil {
		if !emailPattern.MatchString(*req.Email) {
			return nil, errors.New("please add a valid email")
		}
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			return nil, ErrInvalidRole
		}
		updates["role"] = *req.Role
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}
		if req.Credits != nil && *req.Credits != user.Credits {
			delta, description := adminAdjustment(actor, user.Credits, *req.Credits)
			if err := addCredits(tx, id, delta, description, models.TxAdminAdjustment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}
