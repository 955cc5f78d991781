package handler

import (
	"net/http"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/repository"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"github.com/BrenoDPS/teste-tecnico-backend/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AnalyticsHandler serves the read-only aggregate reports. Every report
// tolerates an empty store: no matching rows yields an empty collection.
type AnalyticsHandler struct {
	analytics *repository.AnalyticsRepo
}

// NewAnalyticsHandler creates the analytics handler
func NewAnalyticsHandler(analytics *repository.AnalyticsRepo) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// SupplierSales reports warranty and purchase counts per supplier
func (h *AnalyticsHandler) SupplierSales(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordReportRequest("supplier_sales")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	filter := repository.SupplierSalesFilter{
		Name:       c.QueryParam("name"),
		LocationID: parseUintQuery(c, "location_id"),
		DateRange:  dateRange,
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := h.analytics.SupplierSales(c.Request().Context(), filter)
	if err != nil {
		log.Error("Supplier sales report failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}

	return c.JSON(http.StatusOK, rows)
}

// WarrantyByModel reports claim counts per vehicle model
func (h *AnalyticsHandler) WarrantyByModel(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordReportRequest("warranty_by_model")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := h.analytics.WarrantyByModel(c.Request().Context(), dateRange)
	if err != nil {
		log.Error("Warranty-by-model report failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}

	return c.JSON(http.StatusOK, rows)
}

// Transactions reports purchase counts grouped by type plus the warranty total
func (h *AnalyticsHandler) Transactions(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordReportRequest("transactions")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	filter := repository.TransactionReportFilter{
		PurchanceType: c.QueryParam("purchance_type"),
		PartID:        parseUintQuery(c, "part_id"),
		DateRange:     dateRange,
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	report, err := h.analytics.Transactions(c.Request().Context(), filter)
	if err != nil {
		log.Error("Transaction report failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}

	return c.JSON(http.StatusOK, report)
}

// SupplierTransactions reports each supplier's transaction mix and warranty
// ratio
func (h *AnalyticsHandler) SupplierTransactions(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordReportRequest("supplier_transactions")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := h.analytics.SupplierTransactions(c.Request().Context(), dateRange)
	if err != nil {
		log.Error("Supplier transactions report failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}

	return c.JSON(http.StatusOK, rows)
}

// ModelTransactions reports claim involvement per (model, year)
func (h *AnalyticsHandler) ModelTransactions(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordReportRequest("model_transactions")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := h.analytics.ModelTransactions(c.Request().Context(), dateRange)
	if err != nil {
		log.Error("Model transactions report failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}

	return c.JSON(http.StatusOK, rows)
}

// PartPerformance reports warranty counts per part with its supplier
func (h *AnalyticsHandler) PartPerformance(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordReportRequest("part_performance")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	rows, err := h.analytics.PartPerformance(c.Request().Context(), dateRange)
	if err != nil {
		log.Error("Part performance report failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "report failed"})
	}

	return c.JSON(http.StatusOK, rows)
}
