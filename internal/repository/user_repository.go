package repository

import (
	"errors"

	"meshitomo/internal/model"

	"gorm.io/gorm"
)

// UserRepository owns the user account and icon tables.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository on the given handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user row with the pre-generated 8-digit id.
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// GetByID returns the user or nil when no row matches.
func (r *UserRepository) GetByID(userID int) (*model.User, error) {
	var u model.User
	err := r.db.Where("user_id = ?", userID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmailOrID resolves a login identifier, which may be either the email
// address or the numeric user id. Returns nil when no row matches.
func (r *UserRepository) GetByEmailOrID(identifier string) (*model.User, error) {
	var u model.User
	err := r.db.Where("email = ? OR user_id = ?", identifier, identifier).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EmailTaken reports whether any user already holds the email address.
func (r *UserRepository) EmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// IDExists reports whether the user id is already issued.
func (r *UserRepository) IDExists(userID int) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// UpdateUserName sets the display name.
func (r *UserRepository) UpdateUserName(userID int, userName string) error {
	return r.db.Model(&model.User{}).Where("user_id = ?", userID).
		Update("user_name", userName).Error
}

// UpdateEmail sets the email address. A duplicate surfaces as a
// unique-constraint error for the caller to translate.
func (r *UserRepository) UpdateEmail(userID int, email string) error {
	return r.db.Model(&model.User{}).Where("user_id = ?", userID).
		Update("email", email).Error
}

// UpdatePassword stores a new password hash.
func (r *UserRepository) UpdatePassword(userID int, passwordHash string) error {
	return r.db.Model(&model.User{}).Where("user_id = ?", userID).
		Update("password", passwordHash).Error
}

// UpdateProfilePhotoID sets or clears the profile photo reference.
func (r *UserRepository) UpdateProfilePhotoID(userID int, photoID *int) error {
	return r.db.Model(&model.User{}).Where("user_id = ?", userID).
		Update("profile_photo_id", photoID).Error
}

// SearchByKeyword matches the pattern against display name and user id,
// capped at 100 rows for the friend-add screen.
func (r *UserRepository) SearchByKeyword(pattern string) ([]model.UserSummary, error) {
	users := make([]model.UserSummary, 0)
	err := r.db.Table("table_user AS u").
		Select("u.user_id, u.user_name, i.photo_address").
		Joins("LEFT JOIN table_user_icon i ON u.profile_photo_id = i.profile_photo_id").
		Where("u.user_name LIKE ? OR CAST(u.user_id AS CHAR) LIKE ?", pattern, pattern).
		Limit(100).
		Scan(&users).Error
	return users, err
}

// IconAddress returns the photo address for a profile photo id, or "" when
// the id has no row.
func (r *UserRepository) IconAddress(photoID int) (string, error) {
	var icon model.UserIcon
	err := r.db.Where("profile_photo_id = ?", photoID).First(&icon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return icon.PhotoAddress, nil
}
