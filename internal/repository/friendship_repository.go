package repository

import (
	"meshitomo/internal/model"

	"gorm.io/gorm"
)

// FriendshipRepository owns the canonical-pair friendship relation.
// Callers must pass ids already ordered (small < large); the service layer
// does the canonicalization.
type FriendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates a FriendshipRepository on the given handle.
func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// Create inserts the (small, large) pair. A duplicate pair surfaces as a
// unique-constraint error for the caller to translate.
func (r *FriendshipRepository) Create(small, large int) error {
	return r.db.Create(&model.Friendship{UserIDSmall: small, UserIDLarge: large}).Error
}

// Delete removes the pair; deleting an absent pair is a no-op.
func (r *FriendshipRepository) Delete(small, large int) error {
	return r.db.Where("user_id_small = ? AND user_id_large = ?", small, large).
		Delete(&model.Friendship{}).Error
}

// Exists reports whether the pair has a friendship row.
func (r *FriendshipRepository) Exists(small, large int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_id_small = ? AND user_id_large = ?", small, large).
		Count(&count).Error
	return count > 0, err
}

// FriendIDs returns the counterpart id of every row userID appears in,
// regardless of which side of the pair it is stored on.
func (r *FriendshipRepository) FriendIDs(userID int) ([]int, error) {
	friendIDs := make([]int, 0)
	err := r.db.Raw(`
		SELECT
			CASE
				WHEN user_id_small = ? THEN user_id_large
				ELSE user_id_small
			END AS friend_id
		FROM friendship
		WHERE user_id_small = ? OR user_id_large = ?`,
		userID, userID, userID,
	).Scan(&friendIDs).Error
	return friendIDs, err
}
