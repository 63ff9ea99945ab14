package services

import (
	"errors"
	"fmt"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrNotContentOwner = errors.New("not authorized to modify this content")
)

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func creatorPreload(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "profile_image")
}

func (s *ContentService) List(q *ContentListQuery) ([]models.Content, int64, error) {
	query := s.db.Model(&models.Content{})
	for _, f := range q.filters {
		if f.op == "IN" {
			query = query.Where(f.column+" IN ?", f.value)
		} else {
			query = query.Where(fmt.Sprintf("%s %s ?", f.column, f.op), f.value)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if len(q.columns) > 0 {
		query = query.Select(q.columns)
	} else {
		query = query.Preload("Creator", creatorPreload)
	}
	for _, order := range q.orderBy {
		query = query.Order(order)
	}

	var contents []models.Content
	err := query.Offset((q.Page - 1) * q.Limit).Limit(q.Limit).Find(&contents).Error
	return contents, total, err
}

// Get fetches one item and increments its view counter. Views award no
// credits.
func (s *ContentService) Get(id uuid.UUID) (*models.Content, error) {
	var content models.Content
	if err := s.db.Preload("Creator", creatorPreload).First(&content, "id = ?", id).Error; err != nil {
		return nil, ErrContentNotFound
	}

	if err := s.db.Model(&content).Update("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}
	content.Views++
	return &content, nil
}

// Create stores a new item and awards the creation bonus to the creator
// in the same transaction.
func (s *ContentService) Create(creatorID uuid.UUID, req *dto.CreateContentRequest) (*models.Content, error) {
	if req.Title == "" || len(req.Title) > 100 {
		return nil, errors.New("please add a title of at most 100 characters")
	}
	if req.Description == "" || len(req.Description) > 1000 {
		return nil, errors.New("please add a description of at most 1000 characters")
	}
	if !models.ValidContentType(req.ContentType) {
		return nil, errors.New("contentType must be one of article, video, image, audio")
	}
	if req.ContentURL == "" {
		return nil, errors.New("please add content URL")
	}

	var creator models.User
	if err := s.db.First(&creator, "id = ?", creatorID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	content := models.Content{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		ContentURL:  req.ContentURL,
		CreatorID:   creatorID,
		Tags:        datatypes.NewJSONSlice(req.Tags),
	}
	if req.Thumbnail != "" {
		content.Thumbnail = req.Thumbnail
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&content).Error; err != nil {
			return fmt.Errorf("failed to create content: %w", err)
		}
		amount, description, txType := creationAward(content.Title)
		return addCredits(tx, creatorID, amount, description, txType)
	})
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *ContentService) Update(actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateContentRequest) (*models.Content, error) {
	var content models.Content
	if err := s.db.First(&content, "id = ?", id).Error; err != nil {
		return nil, ErrContentNotFound
	}
	if !authz.OwnerOrAdmin(actorID, actorRole, content.CreatorID) {
		return nil, ErrNotContentOwner
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > 100 {
			return nil, errors.New("please add a title of at most 100 characters")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" || len(*req.Description) > 1000 {
			return nil, errors.New("please add a description of at most 1000 characters")
		}
		updates["description"] = *req.Description
	}
	if req.ContentType != nil {
		if !models.ValidContentType(*req.ContentType) {
			return nil, errors.New("contentType must be one of article, video, image, audio")
		}
		updates["content_type"] = *req.ContentType
	}
	if req.ContentURL != nil {
		if *req.ContentURL == "" {
			return nil, errors.New("please add content URL")
		}
		updates["content_url"] = *req.ContentURL
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(*req.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&content).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update content: %w", err)
		}
	}

	if err := s.db.Preload("Creator", creatorPreload).First(&content, "id = ?", id).Error; err != nil {
		return nil, ErrContentNotFound
	}
	return &content, nil
}

func (s *ContentService) Delete(actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	var content models.Content
	if err := s.db.First(&content, "id = ?", id).Error; err != nil {
		return ErrContentNotFound
	}
	if !authz.OwnerOrAdmin(actorID, actorRole, content.CreatorID) {
		return ErrNotContentOwner
	}
	return s.db.Delete(&content).Error
}

// Like increments the like counter and credits the creator. There is no
// dedup: the same user may like repeatedly and each call counts.
func (s *ContentService) Like(id uuid.UUID) (*models.Content, error) {
	var content models.Content
	if err := s.db.First(&content, "id = ?", id).Error; err != nil {
		return nil, ErrContentNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&content).Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return fmt.Errorf("failed to increment likes: %w", err)
		}
		amount, description, txType := likeAward(content.Title)
		return addCredits(tx, content.CreatorID, amount, description, txType)
	})
	if err != nil {
		return nil, err
	}

	content.Likes++
	return &content, nil
}
