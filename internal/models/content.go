package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Content types accepted on creation.
var ContentTypes = []string{"article", "video", "image", "audio"}

// Content is a user-authored item (article, video, image or audio).
// Likes and views are monotonically non-decreasing counters.
type Content struct {
	ID          uuid.UUID                      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string                         `gorm:"size:100;not null" json:"title"`
	Description string                         `gorm:"size:1000;not null" json:"description"`
	ContentType string                         `gorm:"size:20;not null;index" json:"contentType"`
	ContentURL  string                         `gorm:"size:2048;not null" json:"contentUrl"`
	Thumbnail   string                         `gorm:"size:2048;default:'default-thumbnail.jpg'" json:"thumbnail"`
	CreatorID   uuid.UUID                      `gorm:"type:uuid;not null;index" json:"creator"`
	Creator     *User                          `gorm:"foreignKey:CreatorID" json:"creatorProfile,omitempty"`
	Likes       int                            `gorm:"default:0" json:"likes"`
	Views       int                            `gorm:"default:0" json:"views"`
	Tags        datatypes.JSONSlice[string]    `gorm:"type:jsonb" json:"tags"`
	CreatedAt   time.Time                      `json:"createdAt"`
	UpdatedAt   time.Time                      `json:"updatedAt"`
}

func ValidContentType(t string) bool {
	for _, v := range ContentTypes {
		if v == t {
			return true
		}
	}
	return false
}
