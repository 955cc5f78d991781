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

func newPurchanceRepo(t *testing.T) (*PurchanceRepo, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	require.NoError(t, db.Create(&model.Location{
		Market: "Mercado Interno", Country: "Brasil", Province: "Sao Paulo", City: "Sorocaba",
	}).Error)
	require.NoError(t, db.Create(&model.Supplier{SupplierName: "Auto Peças Silva", LocationID: 1}).Error)
	require.NoError(t, db.Create(&model.Part{PartName: "Freio ABS", SupplierID: 1}).Error)
	require.NoError(t, db.Create(&model.Part{PartName: "Farol LED", SupplierID: 1}).Error)
	return NewPurchanceRepo(db), db
}

func TestPurchanceRepoCreateAndGet(t *testing.T) {
	repo, _ := newPurchanceRepo(t)
	ctx := context.Background()

	purchance := &model.Purchance{
		PurchanceType: model.PurchanceTypeCompra,
		PurchanceDate: model.NewDate(2024, time.March, 1),
		PartID:        1,
	}
	require.NoError(t, repo.Create(ctx, purchance))
	assert.NotZero(t, purchance.PurchanceID)

	got, err := repo.Get(ctx, purchance.PurchanceID)
	require.NoError(t, err)
	assert.Equal(t, model.PurchanceTypeCompra, got.PurchanceType)
	assert.Equal(t, "2024-03-01", got.PurchanceDate.String())
	assert.Equal(t, uint(1), got.PartID)
}

func TestPurchanceRepoCreateUnknownPartFails(t *testing.T) {
	repo, _ := newPurchanceRepo(t)

	err := repo.Create(context.Background(), &model.Purchance{
		PurchanceType: model.PurchanceTypeCompra,
		PurchanceDate: model.NewDate(2024, time.March, 1),
		PartID:        999,
	})
	require.Error(t, err)
	assert.True(t, IsConstraintViolation(err))
}

func TestPurchanceRepoGetNotFound(t *testing.T) {
	repo, _ := newPurchanceRepo(t)

	_, err := repo.Get(context.Background(), 999)
	assert.True(t, IsNotFound(err))
}

func TestPurchanceRepoUpdate(t *testing.T) {
	repo, _ := newPurchanceRepo(t)
	ctx := context.Background()

	purchance := &model.Purchance{
		PurchanceType: model.PurchanceTypeCompra,
		PurchanceDate: model.NewDate(2024, time.March, 1),
		PartID:        1,
	}
	require.NoError(t, repo.Create(ctx, purchance))

	updated, err := repo.Update(ctx, purchance.PurchanceID, &model.Purchance{
		PurchanceType: model.PurchanceTypeGarantia,
		PurchanceDate: model.NewDate(2024, time.April, 15),
		PartID:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, purchance.PurchanceID, updated.PurchanceID)

	got, err := repo.Get(ctx, purchance.PurchanceID)
	require.NoError(t, err)
	assert.Equal(t, model.PurchanceTypeGarantia, got.PurchanceType)
	assert.Equal(t, "2024-04-15", got.PurchanceDate.String())
	assert.Equal(t, uint(2), got.PartID)
}

func TestPurchanceRepoDelete(t *testing.T) {
	repo, _ := newPurchanceRepo(t)
	ctx := context.Background()

	purchance := &model.Purchance{
		PurchanceType: model.PurchanceTypeCompra,
		PurchanceDate: model.NewDate(2024, time.March, 1),
		PartID:        1,
	}
	require.NoError(t, repo.Create(ctx, purchance))

	require.NoError(t, repo.Delete(ctx, purchance.PurchanceID))

	_, err := repo.Get(ctx, purchance.PurchanceID)
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(repo.Delete(ctx, purchance.PurchanceID)))
}

func TestPurchanceRepoListFilters(t *testing.T) {
	repo, _ := newPurchanceRepo(t)
	ctx := context.Background()

	fixture := []model.Purchance{
		{PurchanceType: model.PurchanceTypeCompra, PurchanceDate: model.NewDate(2024, time.January, 10), PartID: 1},
		{PurchanceType: model.PurchanceTypeGarantia, PurchanceDate: model.NewDate(2024, time.February, 20), PartID: 1},
		{PurchanceType: model.PurchanceTypeCompra, PurchanceDate: model.NewDate(2024, time.March, 5), PartID: 2},
	}
	for i := range fixture {
		require.NoError(t, repo.Create(ctx, &fixture[i]))
	}

	byType, err := repo.List(ctx, PurchanceFilter{PurchanceType: model.PurchanceTypeGarantia, Limit: 100})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "2024-02-20", byType[0].PurchanceDate.String())

	byPart, err := repo.List(ctx, PurchanceFilter{PartID: 2, Limit: 100})
	require.NoError(t, err)
	require.Len(t, byPart, 1)
	assert.Equal(t, model.PurchanceTypeCompra, byPart[0].PurchanceType)

	start := model.NewDate(2024, time.February, 1)
	end := model.NewDate(2024, time.March, 31)
	byRange, err := repo.List(ctx, PurchanceFilter{StartDate: &start, EndDate: &end, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, byRange, 2)

	// a lone bound is ignored; the range only applies when both are present
	onlyStart, err := repo.List(ctx, PurchanceFilter{StartDate: &start, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, onlyStart, 3)
}

func TestPurchanceRepoListPagination(t *testing.T) {
	repo, _ := newPurchanceRepo(t)
	ctx := context.Background()

	for day := 1; day <= 4; day++ {
		require.NoError(t, repo.Create(ctx, &model.Purchance{
			PurchanceType: model.PurchanceTypeCompra,
			PurchanceDate: model.NewDate(2024, time.March, day),
			PartID:        1,
		}))
	}

	page, err := repo.List(ctx, PurchanceFilter{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "2024-03-03", page[0].PurchanceDate.String())
	assert.Equal(t, "2024-03-04", page[1].PurchanceDate.String())
}
