package models

import (
	"time"

	"github.com/google/uuid"
)

// Source platforms for externally-addressed content. "internal" marks
// locally hosted Content rows.
const (
	PlatformTwitter  = "twitter"
	PlatformReddit   = "reddit"
	PlatformLinkedIn = "linkedin"
	PlatformInternal = "internal"
)

var Platforms = []string{PlatformTwitter, PlatformReddit, PlatformLinkedIn, PlatformInternal}

func ValidPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// SavedContent is a per-user bookmark of a feed item. The composite unique
// index enforces at most one save per (user, contentId, platform) as a
// safety net under the idempotent save path.
type SavedContent struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_content_platform" json:"user"`
	ContentID   string    `gorm:"size:255;not null;uniqueIndex:idx_saved_user_content_platform" json:"contentId"`
	Platform    string    `gorm:"size:20;not null;uniqueIndex:idx_saved_user_content_platform" json:"platform"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	ImageURL    string    `gorm:"size:2048" json:"imageUrl,omitempty"`
	ContentURL  string    `gorm:"size:2048;not null" json:"contentUrl"`
	Author      string    `gorm:"size:255" json:"author,omitempty"`
	CreatedAt   time.Time `json:"savedAt"`
}
