package model

// Shop is the read-only restaurant catalog.
// Budget is in yen, Distance in meters from the campus.

type Shop struct {
	ShopID        int    `gorm:"column:shop_id;primaryKey" json:"shop_id"`
	ShopName      string `gorm:"column:shop_name;type:varchar(128);not null" json:"shop_name"`
	Genre         string `gorm:"column:genre;type:varchar(64);index" json:"genre"`
	Budget        int    `gorm:"column:budget;not null" json:"budget"`
	Distance      int    `gorm:"column:distance;not null" json:"distance"`
	PhotoAddress  string `gorm:"column:photo_address;type:varchar(255)" json:"photo_address"`
	Address       string `gorm:"column:address;type:varchar(255)" json:"address"`
	GoogleMapLink string `gorm:"column:google_map_link;type:varchar(255)" json:"google_map_link"`
}

func (Shop) TableName() string { return "table_shop" }
