package services

import (
	"errors"
	"fmt"

	"github.com/creatorhub/creator-platform/internal/authz"
	"github.com/creatorhub/creator-platform/internal/dto"
	"github.com/creatorhub/creator-platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSavedNotFound  = errors.New("saved content not found")
	ErrReportNotFound = errors.New("report not found")
	ErrNotSaveOwner   = errors.New("not authorized to delete this content")
)

// ReportService covers saved-content bookmarks and the report/moderation
// workflow. Reporting is one operation parameterized by platform; the
// internal surface layers a content-existence check on top.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Save bookmarks a feed item. Repeating an identical save is a no-op that
// returns the existing record; the composite unique index backstops races.
func (s *ReportService) Save(userID uuid.UUID, req *dto.SaveContentRequest) (*models.SavedContent, bool, error) {
	if req.ContentID == "" || req.Platform == "" || req.Title == "" || req.ContentURL == "" {
		return nil, false, errors.New("missing required fields")
	}
	if !models.ValidPlatform(req.Platform) {
		return nil, false, errors.New("platform must be one of twitter, reddit, linkedin, internal")
	}

	var existing models.SavedContent
	err := s.db.Where("user_id = ? AND content_id = ? AND platform = ?",
		userID, req.ContentID, req.Platform).First(&existing).Error
	if err == nil {
		return &existing, true, nil
	}

	saved := models.SavedContent{
		ID:          uuid.New(),
		UserID:      userID,
		ContentID:   req.ContentID,
		Platform:    req.Platform,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ContentURL:  req.ContentURL,
		Author:      req.Author,
	}
	if err := s.db.Create(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent save; surface the winner.
			if ferr := s.db.Where("user_id = ? AND content_id = ? AND platform = ?",
				userID, req.ContentID, req.Platform).First(&existing).Error; ferr == nil {
				return &existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("failed to save content: %w", err)
	}
	return &saved, false, nil
}

func (s *ReportService) ListSaved(userID uuid.UUID, page, limit int) ([]models.SavedContent, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&models.SavedContent{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var saved []models.SavedContent
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&saved).Error
	return saved, total, err
}

func (s *ReportService) DeleteSaved(actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	var saved models.SavedContent
	if err := s.db.First(&saved, "id = ?", id).Error; err != nil {
		return ErrSavedNotFound
	}
	if !authz.OwnerOrAdmin(actorID, actorRole, saved.UserID) {
		return ErrNotSaveOwner
	}
	return s.db.Delete(&saved).Error
}

// Report files a report against (contentID, platform). Duplicate reports
// by the same user are idempotent and return the original record.
func (s *ReportService) Report(userID uuid.UUID, contentID, platform, reason, details string) (*models.ReportedContent, bool, error) {
	if contentID == "" || platform == "" || reason == "" {
		return nil, false, errors.New("missing required fields")
	}
	if !models.ValidPlatform(platform) {
		return nil, false, errors.New("platform must be one of twitter, reddit, linkedin, internal")
	}
	if !models.ValidReportReason(reason) {
		return nil, false, errors.New("reason must be one of spam, inappropriate, offensive, misinformation, copyright, other")
	}

	var existing models.ReportedContent
	err := s.db.Where("user_id = ? AND content_id = ? AND platform = ?",
		userID, contentID, platform).First(&existing).Error
	if err == nil {
		return &existing, true, nil
	}

	report := models.ReportedContent{
		ID:        uuid.New(),
		UserID:    userID,
		ContentID: contentID,
		Platform:  platform,
		Reason:    reason,
		Details:   details,
		Status:    "pending",
	}
	if err := s.db.Create(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if ferr := s.db.Where("user_id = ? AND content_id = ? AND platform = ?",
				userID, contentID, platform).First(&existing).Error; ferr == nil {
				return &existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, false, nil
}

// ReportInternal reports an ingested Content row. The row must exist and
// the platform is forced to internal.
func (s *ReportService) ReportInternal(userID uuid.UUID, req *dto.ReportInternalRequest) (*models.ReportedContent, bool, error) {
	contentUUID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return nil, false, ErrContentNotFound
	}
	var content models.Content
	if err := s.db.First(&content, "id = ?", contentUUID).Error; err != nil {
		return nil, false, ErrContentNotFound
	}

	return s.Report(userID, req.ContentID, models.PlatformInternal, req.Reason, req.Details)
}

// ListReports returns every report with the reporter's name and email
// joined in, newest first.
func (s *ReportService) ListReports() ([]models.ReportedContent, error) {
	var reports []models.ReportedContent
	err := s.db.Preload("Reporter", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email")
	}).Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func (s *ReportService) UpdateStatus(id uuid.UUID, status string) (*models.ReportedContent, error) {
	if !models.ValidReportStatus(status) {
		return nil, errors.New("invalid status value")
	}

	result := s.db.Model(&models.ReportedContent{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrReportNotFound
	}

	var report models.ReportedContent
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, ErrReportNotFound
	}
	return &report, nil
}
