package seed

import (
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/fieldcrypt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

// Run populates every table with the development fixture set, in foreign-key
// order. Intended for a fresh database; it does not check for existing rows.
func Run(db *gorm.DB, crypt *fieldcrypt.Encryptor) error {
	if err := seedLocations(db); err != nil {
		return err
	}
	if err := seedVehicles(db); err != nil {
		return err
	}
	if err := seedSuppliers(db, crypt); err != nil {
		return err
	}
	if err := seedParts(db); err != nil {
		return err
	}
	if err := seedPurchances(db); err != nil {
		return err
	}
	if err := seedWarranties(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedLocations(db *gorm.DB) error {
	locations := []model.Location{
		{Market: "Mercado Interno", Country: "Brasil", Province: "Sao Paulo", City: "Sorocaba"},
		{Market: "Mercado Internacional", Country: "Estados Unidos", Province: "California", City: "Los Angeles"},
		{Market: "Mercado Internacional", Country: "Alemanha", Province: "Baviera", City: "Munich"},
		{Market: "Mercado Interno", Country: "Brasil", Province: "Parana", City: "Curitiba"},
	}
	return db.Create(&locations).Error
}

func seedVehicles(db *gorm.DB) error {
	vehicles := []model.Vehicle{
		{Model: "Sedan X", ProdDate: model.NewDate(2022, time.January, 1), Year: 2022, Propulsion: model.PropulsionCombustion},
		{Model: "SUV Y", ProdDate: model.NewDate(2023, time.January, 1), Year: 2023, Propulsion: model.PropulsionHybrid},
		{Model: "Hatch Z", ProdDate: model.NewDate(2021, time.June, 1), Year: 2021, Propulsion: model.PropulsionElectric},
	}
	return db.Create(&vehicles).Error
}

func seedSuppliers(db *gorm.DB, crypt *fieldcrypt.Encryptor) error {
	suppliers := []model.Supplier{
		{SupplierName: "Auto Peças Silva", LocationID: 1, NationalID: "12.345.678/0001-01"},
		{SupplierName: "Peças e Cia", LocationID: 2},
		{SupplierName: "Distribuidora XYZ", LocationID: 3, NationalID: "98.765.432/0001-09"},
	}
	for i := range suppliers {
		enc, err := crypt.Encrypt(suppliers[i].NationalID)
		if err != nil {
			return err
		}
		suppliers[i].NationalIDEnc = enc
		suppliers[i].NationalID = ""
	}
	return db.Create(&suppliers).Error
}

func seedParts(db *gorm.DB) error {
	parts := []model.Part{
		{PartName: "Freio ABS", LastIDPurchase: uintPtr(1), SupplierID: 1},
		{PartName: "Kit Suspensão", LastIDPurchase: uintPtr(2), SupplierID: 2},
		{PartName: "Motor Elétrico", LastIDPurchase: uintPtr(3), SupplierID: 3},
	}
	return db.Create(&parts).Error
}

func seedPurchances(db *gorm.DB) error {
	purchances := []model.Purchance{
		{PurchanceType: model.PurchanceTypeCompra, PurchanceDate: model.NewDate(2024, time.March, 1), PartID: 1},
		{PurchanceType: model.PurchanceTypeGarantia, PurchanceDate: model.NewDate(2024, time.March, 2), PartID: 2},
		{PurchanceType: model.PurchanceTypeCompra, PurchanceDate: model.NewDate(2024, time.March, 3), PartID: 3},
	}
	return db.Create(&purchances).Error
}

func seedWarranties(db *gorm.DB) error {
	warranties := []model.Warranty{
		{
			ClaimKey:      1001,
			VehicleID:     1,
			RepairDate:    model.NewDate(2024, time.March, 2),
			ClientComment: "Problema no freio",
			TechComment:   "Substituição do módulo ABS",
			PartID:        1,
			ClassifedAs:   "MECHANICAL",
			LocationID:    1,
			PurchanceID:   2,
		},
		{
			ClaimKey:      1002,
			VehicleID:     2,
			RepairDate:    model.NewDate(2024, time.March, 3),
			ClientComment: "Ruído na suspensão",
			TechComment:   "Troca dos amortecedores",
			PartID:        2,
			ClassifedAs:   "MECHANICAL",
			LocationID:    2,
			PurchanceID:   2,
		},
		{
			ClaimKey:      1003,
			VehicleID:     3,
			RepairDate:    model.NewDate(2024, time.March, 4),
			ClientComment: "Falha no motor",
			TechComment:   "Substituição do motor elétrico",
			PartID:        3,
			ClassifedAs:   "ELECTRICAL",
			LocationID:    3,
			PurchanceID:   2,
		},
	}
	return db.Create(&warranties).Error
}

func seedUsers(db *gorm.DB) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []model.User{
		{Email: "admin@mail.com", Username: "admin", HashedPassword: string(adminHash), IsActive: true, IsSuperuser: true},
		{Email: "user@mail.com", Username: "user", HashedPassword: string(userHash), IsActive: true},
	}
	return db.Create(&users).Error
}
