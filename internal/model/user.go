package model

// User 8-digit user_id is generated by the application, not auto-incremented.
// Password only ever stores the bcrypt hash, never plaintext.

type User struct {
	UserID         int    `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	UserName       string `gorm:"column:user_name;type:varchar(64);not null"`
	Email          string `gorm:"column:email;type:varchar(128);not null;uniqueIndex"`
	Password       string `gorm:"column:password;type:varchar(255);not null"`
	ProfilePhotoID *int   `gorm:"column:profile_photo_id"`
}

func (User) TableName() string { return "table_user" }

// UserIcon maps a profile photo id to its public address.
type UserIcon struct {
	ProfilePhotoID int    `gorm:"column:profile_photo_id;primaryKey;autoIncrement:false"`
	PhotoAddress   string `gorm:"column:photo_address;type:varchar(255);not null"`
}

func (UserIcon) TableName() string { return "table_user_icon" }

// UserSummary is the joined view returned by follow/friend listings:
// counterpart id, display name and icon address.
type UserSummary struct {
	UserID       int    `gorm:"column:user_id" json:"user_id"`
	UserName     string `gorm:"column:user_name" json:"user_name"`
	PhotoAddress string `gorm:"column:photo_address" json:"photo_address"`
}
