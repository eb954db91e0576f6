package repository

import (
	"meshitomo/internal/model"

	"gorm.io/gorm"
)

// SearchCriteria is the fully resolved filter set for a catalog search.
// Zero values mean "filter absent": absent filters are omitted from the query
// entirely instead of being matched loosely.
type SearchCriteria struct {
	MaxBudget   int      // inclusive upper bound in yen, 0 = no budget filter
	MaxDistance int      // inclusive upper bound in meters, 0 = no distance filter
	Genres      []string // genre tags to match, empty = all genres
	UserID      int      // >0 annotates each row with is_favorite for this user
}

// SearchResult is a catalog row annotated with the caller's favorite state.
type SearchResult struct {
	model.Shop `gorm:"embedded"`
	IsFavorite bool `gorm:"column:is_favorite" json:"is_favorite"`
}

// ShopRepository reads the restaurant catalog.
type ShopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a ShopRepository on the given handle.
func NewShopRepository(db *gorm.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

// Search builds one parameterized query from the criteria and executes it.
// Every active filter is AND-appended; all values travel as bind parameters.
// Returns an empty slice, never nil, when nothing matches.
func (r *ShopRepository) Search(criteria SearchCriteria) ([]SearchResult, error) {
	results := make([]SearchResult, 0)

	query := r.db.Table("table_shop AS s")

	if criteria.UserID > 0 {
		query = query.
			Select("s.*, f.shop_id IS NOT NULL AS is_favorite").
			Joins("LEFT JOIN table_favorite f ON f.shop_id = s.shop_id AND f.user_id = ?",
				criteria.UserID)
	} else {
		query = query.Select("s.*, FALSE AS is_favorite")
	}

	if criteria.MaxBudget > 0 {
		query = query.Where("s.budget <= ?", criteria.MaxBudget)
	}
	if criteria.MaxDistance > 0 {
		query = query.Where("s.distance <= ?", criteria.MaxDistance)
	}
	if len(criteria.Genres) > 0 {
		query = query.Where("s.genre IN ?", criteria.Genres)
	}

	err := query.Order("s.shop_id").Scan(&results).Error
	return results, err
}

// FindAll returns the whole catalog.
func (r *ShopRepository) FindAll() ([]model.Shop, error) {
	shops := make([]model.Shop, 0)
	err := r.db.Order("shop_id").Find(&shops).Error
	return shops, err
}
