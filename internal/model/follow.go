package model

// Follow is a directed edge: follower follows followed.
// Independent of Friendship; no symmetry is implied.

type Follow struct {
	FollowerID int `gorm:"column:follower_id;primaryKey;autoIncrement:false"`
	FollowedID int `gorm:"column:followed_id;primaryKey;autoIncrement:false"`
}

func (Follow) TableName() string { return "relationship" }
