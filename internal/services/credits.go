package services

import (
	"fmt"

	"github.com/creatorhub/creator-platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Credit bonus amounts.
const (
	ContentCreationBonus = 10
	LikeReceivedBonus    = 1
)

// creationAward is the ledger entry for publishing a content item.
func creationAward(title string) (int, string, string) {
	return ContentCreationBonus, fmt.Sprintf("Created content: %s", title), models.TxContentCreation
}

// likeAward is the ledger entry credited to the creator per like received.
func likeAward(title string) (int, string, string) {
	return LikeReceivedBonus, fmt.Sprintf("Like received on: %s", title), models.TxLikeReceived
}

// adminAdjustment returns the signed delta that moves the current balance
// to the requested one, attributed to the acting admin.
func adminAdjustment(actor *models.User, current, requested int) (int, string) {
	return requested - current, fmt.Sprintf("Admin adjustment by %s", actor.Name)
}

// addCredits adjusts a user's balance and appends the matching ledger
// entry. Callers wrap it in a transaction when the adjustment must succeed
// or fail together with another write.
func addCredits(db *gorm.DB, userID uuid.UUID, amount int, description, txType string) error {
	if err := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("credits", gorm.Expr("credits + ?", amount)).Error; err != nil {
		return fmt.Errorf("failed to adjust credits: %w", err)
	}

	tx := models.CreditTransaction{
		ID:              uuid.New(),
		UserID:          userID,
		Amount:          amount,
		Description:     description,
		TransactionType: txType,
	}
	if err := db.Create(&tx).Error; err != nil {
		return fmt.Errorf("failed to record credit transaction: %w", err)
	}
	return nil
}
