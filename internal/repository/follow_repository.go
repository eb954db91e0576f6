package repository

import (
	"meshitomo/internal/model"

	"gorm.io/gorm"
)

// FollowRepository owns the directed follow edges in the relationship table.
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a FollowRepository on the given handle.
func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Create inserts a follower -> followed edge. A duplicate edge surfaces as a
// unique-constraint error for the caller to translate.
func (r *FollowRepository) Create(followerID, followedID int) error {
	return r.db.Create(&model.Follow{FollowerID: followerID, FollowedID: followedID}).Error
}

// Delete removes the edge; deleting an absent edge is a no-op.
func (r *FollowRepository) Delete(followerID, followedID int) error {
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{}).Error
}

// Exists reports whether followerID follows followedID.
func (r *FollowRepository) Exists(followerID, followedID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// Followed lists the users followerID follows, with name and icon address.
func (r *FollowRepository) Followed(followerID int) ([]model.UserSummary, error) {
	users := make([]model.UserSummary, 0)
	err := r.db.Table("relationship AS r").
		Select("u.user_id, u.user_name, i.photo_address").
		Joins("INNER JOIN table_user u ON r.followed_id = u.user_id").
		Joins("INNER JOIN table_user_icon i ON u.profile_photo_id = i.profile_photo_id").
		Where("r.follower_id = ?", followerID).
		Scan(&users).Error
	return users, err
}

// Followers lists the users following followedID, with name and icon address.
func (r *FollowRepository) Followers(followedID int) ([]model.UserSummary, error) {
	users := make([]model.UserSummary, 0)
	err := r.db.Table("relationship AS r").
		Select("u.user_id, u.user_name, i.photo_address").
		Joins("INNER JOIN table_user u ON r.follower_id = u.user_id").
		Joins("INNER JOIN table_user_icon i ON u.profile_photo_id = i.profile_photo_id").
		Where("r.followed_id = ?", followedID).
		Scan(&users).Error
	return users, err
}
