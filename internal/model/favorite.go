package model

// Favorite links a user to a shop. SurrogateKey is monotonic and only used
// to order listings newest-first; the (user_id, shop_id) pair is the identity.

type Favorite struct {
	SurrogateKey uint `gorm:"column:surrogate_key;primaryKey;autoIncrement"`
	UserID       int  `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_user_shop"`
	ShopID       int  `gorm:"column:shop_id;not null;uniqueIndex:idx_favorite_user_shop"`
}

func (Favorite) TableName() string { return "table_favorite" }
