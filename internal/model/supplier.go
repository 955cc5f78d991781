package model

// Supplier is the dimension row for a parts supplier.
//
// NationalID is never stored as-is: the repository encrypts it into
// NationalIDEnc before writes and decrypts it back after reads. The reference
// field exists only so the store emits the foreign key constraint; joins are
// always written explicitly at query time.
type Supplier struct {
	SupplierID   uint   `json:"supplier_id" gorm:"primaryKey"`
	SupplierName string `json:"supplier_name" gorm:"type:varchar(50);index"`
	LocationID   uint   `json:"location_id"`
	NationalID   string `json:"national_id,omitempty" gorm:"-"`

	// Ciphertext at rest, base64. Excluded from API responses.
	NationalIDEnc string `json:"-" gorm:"column:national_id_enc;type:text"`

	Location *Location `json:"-" gorm:"belongsTo;foreignKey:LocationID;references:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName keeps the original star-schema table name
func (Supplier) TableName() string {
	return "dim_supplier"
}
