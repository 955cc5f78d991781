package testhelpers

import (
	"testing"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/fieldcrypt"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestConfig returns a configuration suitable for tests: fixed keys, small
// pages, no external services
func NewTestConfig() *config.Config {
	return &config.Config{
		ServiceName: "warranty-api-test",
		Server: config.ServerConfig{
			Port: "0",
			Env:  "test",
		},
		JWT: config.JWTConfig{
			SigningKey:        "test-signing-key",
			ExpirationMinutes: 30,
		},
		Crypto: config.CryptoConfig{
			FieldKey: "0123456789abcdef0123456789abcdef",
		},
		Pagination: config.PaginationConfig{
			DefaultPageSize: 100,
			MaxPageSize:     1000,
		},
		Log:     config.LogConfig{Level: "error"},
		Metrics: config.MetricsConfig{Prefix: "warranty_test"},
	}
}

// NewTestDB opens an isolated in-memory SQLite database with foreign keys
// enforced and the full schema migrated. The pool is pinned to one connection
// so every query sees the same in-memory store.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// NewTestEncryptor builds the field encryptor with the test key
func NewTestEncryptor(t *testing.T) *fieldcrypt.Encryptor {
	t.Helper()

	crypt, err := fieldcrypt.New(&NewTestConfig().Crypto)
	require.NoError(t, err)
	return crypt
}

// SeedStarSchema inserts a minimal consistent fixture: one location, one
// vehicle, one supplier with one part, one acquisition purchase and one
// warranty claim against it. Returns nothing; ids are all 1 (claim key 1001).
func SeedStarSchema(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&model.Location{
		Market: "Mercado Interno", Country: "Brasil", Province: "Sao Paulo", City: "Sorocaba",
	}).Error)
	require.NoError(t, db.Create(&model.Vehicle{
		Model: "Sedan X", ProdDate: model.NewDate(2022, time.January, 1), Year: 2022,
		Propulsion: model.PropulsionCombustion,
	}).Error)
	require.NoError(t, db.Create(&model.Supplier{
		SupplierName: "Auto Peças Silva", LocationID: 1,
	}).Error)
	require.NoError(t, db.Create(&model.Part{
		PartName: "Freio ABS", SupplierID: 1,
	}).Error)
	require.NoError(t, db.Create(&model.Purchance{
		PurchanceType: model.PurchanceTypeCompra,
		PurchanceDate: model.NewDate(2024, time.March, 1),
		PartID:        1,
	}).Error)
	require.NoError(t, db.Create(&model.Warranty{
		ClaimKey:   1001,
		VehicleID:  1,
		RepairDate: model.NewDate(2024, time.March, 2),
		PartID:     1, ClassifedAs: "MECHANICAL", LocationID: 1, PurchanceID: 1,
	}).Error)
}
