package repository

import (
	"context"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/fieldcrypt"
	"gorm.io/gorm"
)

// SupplierFilter holds the optional list filters for suppliers
type SupplierFilter struct {
	Name       string
	LocationID uint
	Skip       int
	Limit      int
}

// SupplierRepo persists suppliers. The national id goes through the
// encryptor on the way in and out; only ciphertext ever reaches the store.
type SupplierRepo struct {
	db    *gorm.DB
	crypt *fieldcrypt.Encryptor
}

// NewSupplierRepo creates a supplier repository
func NewSupplierRepo(db *gorm.DB, crypt *fieldcrypt.Encryptor) *SupplierRepo {
	return &SupplierRepo{db: db, crypt: crypt}
}

// List returns suppliers matching the filter, paginated
func (r *SupplierRepo) List(ctx context.Context, filter SupplierFilter) ([]model.Supplier, error) {
	query := r.db.WithContext(ctx).Model(&model.Supplier{})

	if filter.Name != "" {
		query = query.Where("LOWER(supplier_name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.LocationID != 0 {
		query = query.Where("location_id = ?", filter.LocationID)
	}

	suppliers := make([]model.Supplier, 0)
	err := query.
		Order("supplier_id").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&suppliers).Error
	if err != nil {
		return nil, err
	}

	for i := range suppliers {
		if err := r.decrypt(&suppliers[i]); err != nil {
			return nil, err
		}
	}
	return suppliers, nil
}

// Get fetches a supplier by id
func (r *SupplierRepo) Get(ctx context.Context, id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return nil, err
	}
	if err := r.decrypt(&supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Create inserts a supplier and returns it with its generated id
func (r *SupplierRepo) Create(ctx context.Context, supplier *model.Supplier) error {
	if err := r.encrypt(supplier); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return err
	}
	// hand the plaintext back to the caller
	return r.decrypt(supplier)
}

// Update overwrites every field of an existing supplier. There is no partial
// merge; callers resend the full record.
func (r *SupplierRepo) Update(ctx context.Context, id uint, supplier *model.Supplier) (*model.Supplier, error) {
	var existing model.Supplier
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, err
	}

	supplier.SupplierID = id
	if err := r.encrypt(supplier); err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Save(supplier).Error; err != nil {
		return nil, err
	}
	if err := r.decrypt(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier row. Deleting a supplier still referenced by
// parts fails at the store and surfaces as a constraint violation.
func (r *SupplierRepo) Delete(ctx context.Context, id uint) error {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&supplier).Error
}

func (r *SupplierRepo) encrypt(s *model.Supplier) error {
	enc, err := r.crypt.Encrypt(s.NationalID)
	if err != nil {
		return err
	}
	s.NationalIDEnc = enc
	s.NationalID = ""
	return nil
}

func (r *SupplierRepo) decrypt(s *model.Supplier) error {
	plain, err := r.crypt.Decrypt(s.NationalIDEnc)
	if err != nil {
		return err
	}
	s.NationalID = plain
	s.NationalIDEnc = ""
	return nil
}
