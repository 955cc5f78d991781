package model

// Part is the dimension row for a vehicle part sourced from a supplier.
// LastIDPurchase points at the most recent purchase row, when known.
type Part struct {
	PartID         uint   `json:"part_id" gorm:"primaryKey"`
	PartName       string `json:"part_name" gorm:"type:varchar(255);index"`
	SupplierID     uint   `json:"supplier_id"`
	LastIDPurchase *uint  `json:"last_id_purchase"`

	Supplier *Supplier `json:"-" gorm:"belongsTo;foreignKey:SupplierID;references:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the original star-schema table name
func (Part) TableName() string {
	return "dim_parts"
}
