package repository

import (
	"context"
	"testing"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBulkRepo(t *testing.T) (*BulkRepo, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	return NewBulkRepo(db, testhelpers.NewTestEncryptor(t)), db
}

func TestBulkRepoCreateVehicles(t *testing.T) {
	repo, db := newBulkRepo(t)

	created, err := repo.CreateVehicles(context.Background(), []model.Vehicle{
		{Model: "Sedan X", ProdDate: model.NewDate(2022, time.January, 1), Year: 2022, Propulsion: model.PropulsionCombustion},
		{Model: "Hatch Y", ProdDate: model.NewDate(2023, time.June, 1), Year: 2023, Propulsion: model.PropulsionElectric},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, uint(1), created[0].VehicleID)
	assert.Equal(t, uint(2), created[1].VehicleID)

	var count int64
	require.NoError(t, db.Model(&model.Vehicle{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestBulkRepoCreateSuppliersEncrypts(t *testing.T) {
	repo, db := newBulkRepo(t)

	require.NoError(t, db.Create(&model.Location{
		Market: "Mercado Interno", Country: "Brasil", Province: "Sao Paulo", City: "Sorocaba",
	}).Error)

	created, err := repo.CreateSuppliers(context.Background(), []model.Supplier{
		{SupplierName: "Auto Peças Silva", LocationID: 1, NationalID: "12.345.678/0001-90"},
		{SupplierName: "Freios do Sul", LocationID: 1},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "12.345.678/0001-90", created[0].NationalID)
	assert.Empty(t, created[1].NationalID)

	var raw struct{ NationalIDEnc string }
	require.NoError(t, db.Table("dim_supplier").
		Select("national_id_enc").
		Where("supplier_id = ?", created[0].SupplierID).
		Scan(&raw).Error)
	assert.NotEmpty(t, raw.NationalIDEnc)
	assert.NotContains(t, raw.NationalIDEnc, "12.345.678")
}

func TestBulkRepoWholeBatchRollsBack(t *testing.T) {
	repo, db := newBulkRepo(t)

	require.NoError(t, db.Create(&model.Location{
		Market: "Mercado Interno", Country: "Brasil", Province: "Sao Paulo", City: "Sorocaba",
	}).Error)
	require.NoError(t, db.Create(&model.Supplier{SupplierName: "Auto Peças Silva", LocationID: 1}).Error)

	// the second row points at a supplier that does not exist; the first row
	// must not survive either
	_, err := repo.CreateParts(context.Background(), []model.Part{
		{PartName: "Freio ABS", SupplierID: 1},
		{PartName: "Farol LED", SupplierID: 999},
	})
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err))

	var count int64
	require.NoError(t, db.Model(&model.Part{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestBulkRepoCreateWarranties(t *testing.T) {
	repo, db := newBulkRepo(t)
	testhelpers.SeedStarSchema(t, db)

	created, err := repo.CreateWarranties(context.Background(), []model.Warranty{
		{VehicleID: 1, RepairDate: model.NewDate(2024, time.April, 1), PartID: 1, ClassifedAs: "ELECTRICAL", LocationID: 1, PurchanceID: 1},
		{VehicleID: 1, RepairDate: model.NewDate(2024, time.April, 2), PartID: 1, ClassifedAs: "MECHANICAL", LocationID: 1, PurchanceID: 1},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].ClaimKey)
	assert.NotZero(t, created[1].ClaimKey)

	var count int64
	require.NoError(t, db.Model(&model.Warranty{}).Count(&count).Error)
	// the fixture already carries one claim
	assert.EqualValues(t, 3, count)
}

func TestBulkRepoCreatePurchances(t *testing.T) {
	repo, db := newBulkRepo(t)
	testhelpers.SeedStarSchema(t, db)

	created, err := repo.CreatePurchances(context.Background(), []model.Purchance{
		{PurchanceType: model.PurchanceTypeCompra, PurchanceDate: model.NewDate(2024, time.May, 1), PartID: 1},
		{PurchanceType: model.PurchanceTypeGarantia, PurchanceDate: model.NewDate(2024, time.May, 2), PartID: 1},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Greater(t, created[1].PurchanceID, created[0].PurchanceID)
}
