package repository

import (
	"context"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"gorm.io/gorm"
)

// PurchanceFilter holds the optional list filters for transactions
type PurchanceFilter struct {
	PurchanceType string
	StartDate     *model.Date
	EndDate       *model.Date
	PartID        uint
	Skip          int
	Limit         int
}

// PurchanceRepo persists purchase/transaction rows
type PurchanceRepo struct {
	db *gorm.DB
}

// NewPurchanceRepo creates a transaction repository
func NewPurchanceRepo(db *gorm.DB) *PurchanceRepo {
	return &PurchanceRepo{db: db}
}

// List returns transactions matching the filter, paginated. The date range is
// inclusive and only applied when both bounds are present.
func (r *PurchanceRepo) List(ctx context.Context, filter PurchanceFilter) ([]model.Purchance, error) {
	query := r.db.WithContext(ctx).Model(&model.Purchance{})

	if filter.PurchanceType != "" {
		query = query.Where("purchance_type = ?", filter.PurchanceType)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("purchance_date BETWEEN ? AND ?", filter.StartDate.Time, filter.EndDate.Time)
	}
	if filter.PartID != 0 {
		query = query.Where("part_id = ?", filter.PartID)
	}

	purchances := make([]model.Purchance, 0)
	err := query.
		Order("purchance_id").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&purchances).Error
	return purchances, err
}

// Get fetches a transaction by id
func (r *PurchanceRepo) Get(ctx context.Context, id uint) (*model.Purchance, error) {
	var purchance model.Purchance
	if err := r.db.WithContext(ctx).First(&purchance, id).Error; err != nil {
		return nil, err
	}
	return &purchance, nil
}

// Create inserts a transaction and returns it with its generated id
func (r *PurchanceRepo) Create(ctx context.Context, purchance *model.Purchance) error {
	return r.db.WithContext(ctx).Create(purchance).Error
}

// Update overwrites every field of an existing transaction
func (r *PurchanceRepo) Update(ctx context.Context, id uint, purchance *model.Purchance) (*model.Purchance, error) {
	var existing model.Purchance
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, err
	}

	purchance.PurchanceID = id
	if err := r.db.WithContext(ctx).Save(purchance).Error; err != nil {
		return nil, err
	}
	return purchance, nil
}

// Delete removes a transaction row
func (r *PurchanceRepo) Delete(ctx context.Context, id uint) error {
	var purchance model.Purchance
	if err := r.db.WithContext(ctx).First(&purchance, id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&purchance).Error
}
