package model

// Location is the dimension row describing where a supplier operates or a
// repair happened.
type Location struct {
	LocationID uint   `json:"location_id" gorm:"primaryKey"`
	Market     string `json:"market" gorm:"type:varchar(50)"`
	Country    string `json:"country" gorm:"type:varchar(50)"`
	Province   string `json:"province" gorm:"type:varchar(50)"`
	City       string `json:"city" gorm:"type:varchar(50)"`
}

// TableName keeps the original star-schema table name
func (Location) TableName() string {
	return "dim_locations"
}
