package model

// Friendship is an undirected relation stored as a canonical ordered pair:
// UserIDSmall = min(a,b), UserIDLarge = max(a,b). The CHECK constraint is the
// database backstop; the service rejects a==b before any SQL is issued.

type Friendship struct {
	UserIDSmall int `gorm:"column:user_id_small;primaryKey;autoIncrement:false;check:no_self_friend,user_id_small < user_id_large"`
	UserIDLarge int `gorm:"column:user_id_large;primaryKey;autoIncrement:false"`
}

func (Friendship) TableName() string { return "friendship" }
