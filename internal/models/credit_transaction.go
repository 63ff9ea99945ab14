package models

import (
	"time"

	"github.com/google/uuid"
)

// Credit transaction types. "login", "profile_update" and "content_view" are
// defined for ledger compatibility but no code path currently grants them;
// viewing content intentionally awards no credits.
const (
	TxLogin           = "login"
	TxProfileUpdate   = "profile_update"
	TxContentCreation = "content_creation"
	TxLikeReceived    = "like_received"
	TxContentView     = "content_view"
	TxAdminAdjustment = "admin_adjustment"
)

// CreditTransaction is one append-only entry in a user's credit ledger.
// Rows are only ever inserted; there is no update or delete path.
type CreditTransaction struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Amount          int       `gorm:"not null" json:"amount"`
	Description     string    `gorm:"size:255;not null" json:"description"`
	TransactionType string    `gorm:"size:30;not null" json:"transactionType"`
	CreatedAt       time.Time `json:"timestamp"`
}
