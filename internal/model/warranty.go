package model

// Warranty is the fact row linking a vehicle, part, location and purchase to a
// single claim. ClassifedAs keeps the historical column spelling so existing
// consumers of the API keep working.
type Warranty struct {
	ClaimKey      uint   `json:"claim_key" gorm:"primaryKey"`
	VehicleID     uint   `json:"vehicle_id"`
	RepairDate    Date   `json:"repair_date" gorm:"index"`
	ClientComment string `json:"client_comment" gorm:"type:text"`
	TechComment   string `json:"tech_comment" gorm:"type:text"`
	PartID        uint   `json:"part_id"`
	ClassifedAs   string `json:"classifed_as" gorm:"type:varchar(50)"`
	LocationID    uint   `json:"location_id"`
	PurchanceID   uint   `json:"purchance_id"`

	Vehicle   *Vehicle   `json:"-" gorm:"belongsTo;foreignKey:VehicleID;references:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Part      *Part      `json:"-" gorm:"belongsTo;foreignKey:PartID;references:PartID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Location  *Location  `json:"-" gorm:"belongsTo;foreignKey:LocationID;references:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Purchance *Purchance `json:"-" gorm:"belongsTo;foreignKey:PurchanceID;references:PurchanceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the original star-schema table name
func (Warranty) TableName() string {
	return "fact_warranties"
}
