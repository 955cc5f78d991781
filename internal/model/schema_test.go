package model_test

import (
	"testing"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type foreignKeyRow struct {
	Table string `gorm:"column:table"`
	From  string `gorm:"column:from"`
	To    string `gorm:"column:to"`
}

func foreignKeysOf(t *testing.T, db *gorm.DB, table string) map[string]foreignKeyRow {
	t.Helper()

	rows := make([]foreignKeyRow, 0)
	require.NoError(t, db.Raw(
		"SELECT \"table\", \"from\", \"to\" FROM pragma_foreign_key_list(?)", table,
	).Scan(&rows).Error)

	byColumn := make(map[string]foreignKeyRow, len(rows))
	for _, row := range rows {
		byColumn[row.From] = row
	}
	return byColumn
}

// The star schema hangs off the fact table: every foreign key must live on the
// referencing side, and the referenced dimensions must carry none. A migration
// that inverts any of these makes dimension inserts impossible under an
// FK-enforcing store.
func TestMigratedForeignKeysPointAtDimensions(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	facts := foreignKeysOf(t, db, "fact_warranties")
	require.Len(t, facts, 4)
	assert.Equal(t, "dim_vehicle", facts["vehicle_id"].Table)
	assert.Equal(t, "dim_parts", facts["part_id"].Table)
	assert.Equal(t, "dim_locations", facts["location_id"].Table)
	assert.Equal(t, "dim_purchances", facts["purchance_id"].Table)

	suppliers := foreignKeysOf(t, db, "dim_supplier")
	require.Len(t, suppliers, 1)
	assert.Equal(t, "dim_locations", suppliers["location_id"].Table)

	parts := foreignKeysOf(t, db, "dim_parts")
	// exactly the supplier edge; a constraint on the last-purchase pointer
	// would close a cycle with dim_purchances
	require.Len(t, parts, 1)
	assert.Equal(t, "dim_supplier", parts["supplier_id"].Table)

	purchances := foreignKeysOf(t, db, "dim_purchances")
	require.Len(t, purchances, 1)
	assert.Equal(t, "dim_parts", purchances["part_id"].Table)

	// pure dimensions reference nothing
	assert.Empty(t, foreignKeysOf(t, db, "dim_locations"))
	assert.Empty(t, foreignKeysOf(t, db, "dim_vehicle"))
}

func TestDimensionRowsInsertableOnFreshStore(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	require.NoError(t, db.Create(&model.Location{
		Market: "Mercado Interno", Country: "Brasil", Province: "Sao Paulo", City: "Sorocaba",
	}).Error)
	require.NoError(t, db.Create(&model.Vehicle{
		Model: "Sedan X", Year: 2022, Propulsion: model.PropulsionCombustion,
	}).Error)
	require.NoError(t, db.Create(&model.Supplier{
		SupplierName: "Auto Peças Silva", LocationID: 1,
	}).Error)

	// the fact table is the constrained side
	err := db.Create(&model.Warranty{
		ClaimKey: 1001, VehicleID: 1, PartID: 999, ClassifedAs: "MECHANICAL",
		LocationID: 1, PurchanceID: 999,
	}).Error
	assert.Error(t, err)
}
