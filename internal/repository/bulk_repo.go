package repository

import (
	"context"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/fieldcrypt"
	"gorm.io/gorm"
)

// BulkRepo inserts batches of one entity type inside a single transaction.
// The whole payload is materialized and written at once: if any row violates
// a constraint the transaction rolls back and nothing is kept.
type BulkRepo struct {
	db    *gorm.DB
	crypt *fieldcrypt.Encryptor
}

// NewBulkRepo creates a bulk-insert repository
func NewBulkRepo(db *gorm.DB, crypt *fieldcrypt.Encryptor) *BulkRepo {
	return &BulkRepo{db: db, crypt: crypt}
}

// CreateVehicles inserts vehicles in order and returns them with generated ids
func (r *BulkRepo) CreateVehicles(ctx context.Context, vehicles []model.Vehicle) ([]model.Vehicle, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&vehicles).Error
	})
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// CreateParts inserts parts in order and returns them with generated ids
func (r *BulkRepo) CreateParts(ctx context.Context, parts []model.Part) ([]model.Part, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&parts).Error
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// CreateSuppliers inserts suppliers in order, encrypting national ids first
func (r *BulkRepo) CreateSuppliers(ctx context.Context, suppliers []model.Supplier) ([]model.Supplier, error) {
	for i := range suppliers {
		enc, err := r.crypt.Encrypt(suppliers[i].NationalID)
		if err != nil {
			return nil, err
		}
		suppliers[i].NationalIDEnc = enc
		suppliers[i].NationalID = ""
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&suppliers).Error
	})
	if err != nil {
		return nil, err
	}

	for i := range suppliers {
		plain, err := r.crypt.Decrypt(suppliers[i].NationalIDEnc)
		if err != nil {
			return nil, err
		}
		suppliers[i].NationalID = plain
		suppliers[i].NationalIDEnc = ""
	}
	return suppliers, nil
}

// CreatePurchances inserts transactions in order and returns them with generated ids
func (r *BulkRepo) CreatePurchances(ctx context.Context, purchances []model.Purchance) ([]model.Purchance, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&purchances).Error
	})
	if err != nil {
		return nil, err
	}
	return purchances, nil
}

// CreateWarranties inserts warranty claims in order and returns them with
// generated claim keys
func (r *BulkRepo) CreateWarranties(ctx context.Context, warranties []model.Warranty) ([]model.Warranty, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&warranties).Error
	})
	if err != nil {
		return nil, err
	}
	return warranties, nil
}
