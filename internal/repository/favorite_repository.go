package repository

import (
	"meshitomo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository owns the user-shop favorite relation.
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a FavoriteRepository on the given handle.
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// SyncFavorites replaces the user's whole favorite set with shopIDs.
// Runs in one transaction: delete everything, then bulk insert. A failure in
// either step rolls back both, so a partial replacement is never visible.
func (r *FavoriteRepository) SyncFavorites(userID int, shopIDs []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}

		if len(shopIDs) == 0 {
			return nil
		}

		favorites := make([]model.Favorite, 0, len(shopIDs))
		for _, shopID := range shopIDs {
			favorites = append(favorites, model.Favorite{UserID: userID, ShopID: shopID})
		}
		return tx.Create(&favorites).Error
	})
}

// UpdateDiff applies an incremental change to the favorite set in one
// transaction. Removed rows are deleted before added rows are inserted, so a
// shop id present in both sets ends up favorited. Inserts are
// insert-or-ignore: re-adding an existing favorite is a silent no-op.
func (r *FavoriteRepository) UpdateDiff(userID int, added, removed []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(removed) > 0 {
			if err := tx.Where("user_id = ? AND shop_id IN ?", userID, removed).
				Delete(&model.Favorite{}).Error; err != nil {
				return err
			}
		}

		if len(added) > 0 {
			favorites := make([]model.Favorite, 0, len(added))
			for _, shopID := range added {
				favorites = append(favorites, model.Favorite{UserID: userID, ShopID: shopID})
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&favorites).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ListByUser returns the user's favorite shops joined with the catalog,
// most recently favorited first.
func (r *FavoriteRepository) ListByUser(userID int) ([]model.Shop, error) {
	shops := make([]model.Shop, 0)
	err := r.db.Table("table_favorite AS f").
		Select("s.*").
		Joins("INNER JOIN table_shop s ON s.shop_id = f.shop_id").
		Where("f.user_id = ?", userID).
		Order("f.surrogate_key DESC").
		Scan(&shops).Error
	return shops, err
}

// Remove deletes a single favorite row. Deleting an absent pair is a no-op.
func (r *FavoriteRepository) Remove(userID, shopID int) error {
	return r.db.Where("user_id = ? AND shop_id = ?", userID, shopID).
		Delete(&model.Favorite{}).Error
}
