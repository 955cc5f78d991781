package repository

import (
	"context"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"gorm.io/gorm"
)

// DateRange is an inclusive calendar-date window. Reports only apply it when
// both bounds were supplied, matching the historical API.
type DateRange struct {
	Start model.Date
	End   model.Date
}

// SupplierSalesFilter narrows the supplier sales report
type SupplierSalesFilter struct {
	Name       string
	LocationID uint
	DateRange  *DateRange
}

// TransactionReportFilter narrows the transaction breakdown report
type TransactionReportFilter struct {
	PurchanceType string
	PartID        uint
	DateRange     *DateRange
}

// SupplierSalesRow is one supplier's warranty/purchase totals
type SupplierSalesRow struct {
	SupplierID      uint   `json:"supplier_id"`
	SupplierName    string `json:"supplier_name"`
	TotalWarranties int64  `json:"total_warranties"`
	TotalPurchases  int64  `json:"total_purchases"`
}

// ModelWarrantyRow is one vehicle model's warranty totals
type ModelWarrantyRow struct {
	Model           string `json:"model"`
	TotalWarranties int64  `json:"total_warranties"`
	UniqueIssues    int64  `json:"unique_issues"`
}

// TypeCount is a grouped purchase count for one transaction type
type TypeCount struct {
	TotalCount int64 `json:"total_count"`
}

// TransactionReport breaks purchases down by type and carries the overall
// warranty claim count
type TransactionReport struct {
	Purchases  map[string]TypeCount `json:"purchases"`
	Warranties TypeCount            `json:"warranties"`
}

// SupplierTransactionsRow is one supplier's transaction mix. WarrantyRatio is
// warranty-type rows over acquisition-type rows, zero when the supplier has no
// acquisitions.
type SupplierTransactionsRow struct {
	SupplierID        uint    `json:"supplier_id"`
	SupplierName      string  `json:"supplier_name"`
	TotalTransactions int64   `json:"total_transactions"`
	PurchasesCount    int64   `json:"purchases_count"`
	WarrantiesCount   int64   `json:"warranties_count"`
	WarrantyRatio     float64 `json:"warranty_ratio"`
}

// ModelTransactionsRow is one (model, year) pair's claim involvement
type ModelTransactionsRow struct {
	Model           string `json:"model"`
	Year            int    `json:"year"`
	TotalWarranties int64  `json:"total_warranties"`
	UniqueParts     int64  `json:"unique_parts"`
	UniqueSuppliers int64  `json:"unique_suppliers"`
}

// PartPerformanceRow is one part's warranty record joined to its supplier
type PartPerformanceRow struct {
	PartID          uint   `json:"part_id"`
	PartName        string `json:"part_name"`
	SupplierName    string `json:"supplier_name"`
	TotalWarranties int64  `json:"total_warranties"`
	UniqueIssues    int64  `json:"unique_issues"`
}

// AnalyticsRepo runs the read-only aggregate reports over the star schema.
// Every join is written out explicitly; nothing relies on ORM associations.
type AnalyticsRepo struct {
	db *gorm.DB
}

// NewAnalyticsRepo creates an analytics repository
func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// SupplierSales counts claims and purchases per supplier, joined through the
// supplier's parts
func (r *AnalyticsRepo) SupplierSales(ctx context.Context, filter SupplierSalesFilter) ([]SupplierSalesRow, error) {
	query := r.db.WithContext(ctx).
		Table("dim_supplier AS s").
		Select("s.supplier_id, s.supplier_name, "+
			"COUNT(DISTINCT w.claim_key) AS total_warranties, "+
			"COUNT(DISTINCT pu.purchance_id) AS total_purchases").
		Joins("JOIN dim_parts AS p ON p.supplier_id = s.supplier_id").
		Joins("LEFT JOIN fact_warranties AS w ON w.part_id = p.part_id").
		Joins("LEFT JOIN dim_purchances AS pu ON pu.part_id = p.part_id").
		Group("s.supplier_id, s.supplier_name").
		Order("s.supplier_id")

	if filter.Name != "" {
		query = query.Where("LOWER(s.supplier_name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.LocationID != 0 {
		query = query.Where("s.location_id = ?", filter.LocationID)
	}
	if filter.DateRange != nil {
		query = query.Where("pu.purchance_date BETWEEN ? AND ?",
			filter.DateRange.Start.Time, filter.DateRange.End.Time)
	}

	rows := make([]SupplierSalesRow, 0)
	err := query.Scan(&rows).Error
	return rows, err
}

// WarrantyByModel counts claims and distinct failure classifications per
// vehicle model
func (r *AnalyticsRepo) WarrantyByModel(ctx context.Context, dateRange *DateRange) ([]ModelWarrantyRow, error) {
	query := r.db.WithContext(ctx).
		Table("dim_vehicle AS v").
		Select("v.model, "+
			"COUNT(w.claim_key) AS total_warranties, "+
			"COUNT(DISTINCT w.classifed_as) AS unique_issues").
		Joins("JOIN fact_warranties AS w ON w.vehicle_id = v.vehicle_id").
		Group("v.model").
		Order("v.model")

	if dateRange != nil {
		query = query.Where("w.repair_date BETWEEN ? AND ?", dateRange.Start.Time, dateRange.End.Time)
	}

	rows := make([]ModelWarrantyRow, 0)
	err := query.Scan(&rows).Error
	return rows, err
}

// Transactions breaks down purchases by type and totals warranty claims for
// the same window
func (r *AnalyticsRepo) Transactions(ctx context.Context, filter TransactionReportFilter) (*TransactionReport, error) {
	purchases := r.db.WithContext(ctx).
		Table("dim_purchances").
		Select("purchance_type, COUNT(purchance_id) AS total_count").
		Group("purchance_type")

	if filter.PurchanceType != "" {
		purchases = purchases.Where("purchance_type = ?", filter.PurchanceType)
	}
	if filter.PartID != 0 {
		purchases = purchases.Where("part_id = ?", filter.PartID)
	}
	if filter.DateRange != nil {
		purchases = purchases.Where("purchance_date BETWEEN ? AND ?",
			filter.DateRange.Start.Time, filter.DateRange.End.Time)
	}

	var byType []struct {
		PurchanceType string
		TotalCount    int64
	}
	if err := purchases.Scan(&byType).Error; err != nil {
		return nil, err
	}

	warranties := r.db.WithContext(ctx).Table("fact_warranties")
	if filter.DateRange != nil {
		warranties = warranties.Where("repair_date BETWEEN ? AND ?",
			filter.DateRange.Start.Time, filter.DateRange.End.Time)
	}
	var warrantyCount int64
	if err := warranties.Count(&warrantyCount).Error; err != nil {
		return nil, err
	}

	report := &TransactionReport{
		Purchases:  make(map[string]TypeCount, len(byType)),
		Warranties: TypeCount{TotalCount: warrantyCount},
	}
	for _, row := range byType {
		report.Purchases[row.PurchanceType] = TypeCount{TotalCount: row.TotalCount}
	}
	return report, nil
}

// SupplierTransactions totals each supplier's transaction rows by type. The
// ratio denominator is the acquisition count; a supplier with none gets ratio
// zero rather than a division error.
func (r *AnalyticsRepo) SupplierTransactions(ctx context.Context, dateRange *DateRange) ([]SupplierTransactionsRow, error) {
	query := r.db.WithContext(ctx).
		Table("dim_supplier AS s").
		Select("s.supplier_id, s.supplier_name, "+
			"COUNT(pu.purchance_id) AS total_transactions, "+
			"COUNT(CASE WHEN pu.purchance_type = ? THEN 1 END) AS purchases_count, "+
			"COUNT(CASE WHEN pu.purchance_type = ? THEN 1 END) AS warranties_count",
			model.PurchanceTypeCompra, model.PurchanceTypeGarantia).
		Joins("LEFT JOIN dim_parts AS p ON p.supplier_id = s.supplier_id").
		Joins("LEFT JOIN dim_purchances AS pu ON pu.part_id = p.part_id").
		Group("s.supplier_id, s.supplier_name").
		Order("s.supplier_id")

	if dateRange != nil {
		query = query.Where("pu.purchance_date BETWEEN ? AND ?", dateRange.Start.Time, dateRange.End.Time)
	}

	rows := make([]SupplierTransactionsRow, 0)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].PurchasesCount > 0 {
			rows[i].WarrantyRatio = float64(rows[i].WarrantiesCount) / float64(rows[i].PurchasesCount)
		}
	}
	return rows, nil
}

// ModelTransactions counts claims and the distinct parts and suppliers
// involved, per (model, year)
func (r *AnalyticsRepo) ModelTransactions(ctx context.Context, dateRange *DateRange) ([]ModelTransactionsRow, error) {
	query := r.db.WithContext(ctx).
		Table("dim_vehicle AS v").
		Select("v.model, v.year, " +
			"COUNT(w.claim_key) AS total_warranties, " +
			"COUNT(DISTINCT w.part_id) AS unique_parts, " +
			"COUNT(DISTINCT p.supplier_id) AS unique_suppliers").
		Joins("JOIN fact_warranties AS w ON w.vehicle_id = v.vehicle_id").
		Joins("JOIN dim_parts AS p ON p.part_id = w.part_id").
		Group("v.model, v.year").
		Order("v.model, v.year")

	if dateRange != nil {
		query = query.Where("w.repair_date BETWEEN ? AND ?", dateRange.Start.Time, dateRange.End.Time)
	}

	rows := make([]ModelTransactionsRow, 0)
	err := query.Scan(&rows).Error
	return rows, err
}

// PartPerformance joins each part to its supplier and counts its claims and
// distinct failure classifications
func (r *AnalyticsRepo) PartPerformance(ctx context.Context, dateRange *DateRange) ([]PartPerformanceRow, error) {
	query := r.db.WithContext(ctx).
		Table("dim_parts AS p").
		Select("p.part_id, p.part_name, s.supplier_name, " +
			"COUNT(w.claim_key) AS total_warranties, " +
			"COUNT(DISTINCT w.classifed_as) AS unique_issues").
		Joins("JOIN dim_supplier AS s ON s.supplier_id = p.supplier_id").
		Joins("LEFT JOIN fact_warranties AS w ON w.part_id = p.part_id").
		Group("p.part_id, p.part_name, s.supplier_name").
		Order("p.part_id")

	if dateRange != nil {
		query = query.Where("w.repair_date BETWEEN ? AND ?", dateRange.Start.Time, dateRange.End.Time)
	}

	rows := make([]PartPerformanceRow, 0)
	err := query.Scan(&rows).Error
	return rows, err
}
