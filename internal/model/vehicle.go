package model

// Propulsion values used by the seed data. The column is free text, so these
// are conventions rather than an enforced enum.
const (
	PropulsionCombustion = "COMBUSTION"
	PropulsionHybrid     = "HYBRID"
	PropulsionElectric   = "ELECTRIC"
)

// Vehicle is the dimension row for a vehicle model/year combination.
type Vehicle struct {
	VehicleID  uint   `json:"vehicle_id" gorm:"primaryKey"`
	Model      string `json:"model" gorm:"type:varchar(255);index"`
	ProdDate   Date   `json:"prod_date"`
	Year       int    `json:"year"`
	Propulsion string `json:"propulsion" gorm:"type:varchar(50)"`
}

// TableName keeps the original star-schema table name
func (Vehicle) TableName() string {
	return "dim_vehicle"
}
