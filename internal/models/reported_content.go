package models

import (
	"time"

	"github.com/google/uuid"
)

// Report reasons and statuses.
var (
	ReportReasons  = []string{"spam", "inappropriate", "offensive", "misinformation", "copyright", "other"}
	ReportStatuses = []string{"pending", "reviewed", "rejected", "approved"}
)

func ValidReportReason(r string) bool {
	for _, v := range ReportReasons {
		if v == r {
			return true
		}
	}
	return false
}

func ValidReportStatus(s string) bool {
	for _, v := range ReportStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ReportedContent is a user report against a feed item or internal content.
// One active report per (user, contentId, platform); rows are never deleted,
// admins transition status only.
type ReportedContent struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reported_user_content_platform" json:"user"`
	Reporter  *User     `gorm:"foreignKey:UserID" json:"reporter,omitempty"`
	ContentID string    `gorm:"size:255;not null;uniqueIndex:idx_reported_user_content_platform" json:"contentId"`
	Platform  string    `gorm:"size:20;not null;uniqueIndex:idx_reported_user_content_platform" json:"platform"`
	Reason    string    `gorm:"size:30;not null" json:"reason"`
	Details   string    `gorm:"size:1000" json:"details,omitempty"`
	Status    string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time `json:"reportedAt"`
	UpdatedAt time.Time `json:"-"`
}
