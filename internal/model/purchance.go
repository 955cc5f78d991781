package model

// Purchance types. COMPRA is a plain acquisition, GARANTIA a warranty
// replacement. The column stays free text for compatibility with the
// historical data, so these are the recognized values rather than a schema
// enum.
const (
	PurchanceTypeCompra   = "COMPRA"
	PurchanceTypeGarantia = "GARANTIA"
)

// Purchance is a purchase/transaction row for a part. The spelling follows
// the wire contract inherited from the historical schema.
type Purchance struct {
	PurchanceID   uint   `json:"purchance_id" gorm:"primaryKey"`
	PurchanceType string `json:"purchance_type" gorm:"type:varchar(50);index"`
	PurchanceDate Date   `json:"purchance_date" gorm:"index"`
	PartID        uint   `json:"part_id"`

	Part *Part `json:"-" gorm:"belongsTo;foreignKey:PartID;references:PartID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the original star-schema table name
func (Purchance) TableName() string {
	return "dim_purchances"
}
