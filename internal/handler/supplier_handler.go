package handler

import (
	"net/http"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/repository"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"github.com/BrenoDPS/teste-tecnico-backend/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SupplierRequest defines the structure for supplier creation/update requests
type SupplierRequest struct {
	SupplierName string `json:"supplier_name"`
	LocationID   uint   `json:"location_id"`
	NationalID   string `json:"national_id,omitempty"`
}

// SupplierHandler serves supplier CRUD endpoints
type SupplierHandler struct {
	suppliers  *repository.SupplierRepo
	pagination config.PaginationConfig
}

// NewSupplierHandler creates the supplier handler
func NewSupplierHandler(suppliers *repository.SupplierRepo, pagination config.PaginationConfig) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers, pagination: pagination}
}

// List retrieves suppliers, optionally filtered by name substring and location
func (h *SupplierHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "list")

	skip, limit := parsePagination(c, h.pagination)
	filter := repository.SupplierFilter{
		Name:       c.QueryParam("name"),
		LocationID: parseUintQuery(c, "location_id"),
		Skip:       skip,
		Limit:      limit,
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	suppliers, err := h.suppliers.List(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to retrieve suppliers", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve suppliers"})
	}

	log.Info("Suppliers retrieved", zap.Int("count", len(suppliers)))
	return c.JSON(http.StatusOK, suppliers)
}

// Get retrieves a supplier by ID
func (h *SupplierHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "get")

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	supplier, err := h.suppliers.Get(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "supplier not found"})
		}
		log.Error("Failed to retrieve supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve supplier"})
	}

	return c.JSON(http.StatusOK, supplier)
}

// Create inserts a new supplier
func (h *SupplierHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "create")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	supplier := model.Supplier{
		SupplierName: req.SupplierName,
		LocationID:   req.LocationID,
		NationalID:   req.NationalID,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.suppliers.Create(c.Request().Context(), &supplier); err != nil {
		if repository.IsConstraintViolation(err) {
			log.Warn("Supplier violates a constraint", zap.Error(err))
			return c.JSON(http.StatusConflict, echo.Map{"error": "supplier violates a constraint"})
		}
		log.Error("Failed to create supplier", zap.String("name", req.SupplierName), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create supplier"})
	}

	log.Info("Supplier created",
		zap.Uint("supplier_id", supplier.SupplierID),
		zap.String("name", supplier.SupplierName))
	return c.JSON(http.StatusCreated, supplier)
}

// Update overwrites an existing supplier with the full payload
func (h *SupplierHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "update")

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier ID"})
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	supplier := model.Supplier{
		SupplierName: req.SupplierName,
		LocationID:   req.LocationID,
		NationalID:   req.NationalID,
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.suppliers.Update(c.Request().Context(), id, &supplier)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "supplier not found"})
		}
		log.Error("Failed to update supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update supplier"})
	}

	log.Info("Supplier updated", zap.Uint("supplier_id", id), zap.String("name", updated.SupplierName))
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a supplier row
func (h *SupplierHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("supplier", "delete")

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid supplier ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.suppliers.Delete(c.Request().Context(), id); err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "supplier not found"})
		}
		if repository.IsConstraintViolation(err) {
			log.Warn("Supplier still referenced", zap.Uint("supplier_id", id))
			return c.JSON(http.StatusConflict, echo.Map{"error": "supplier is referenced by other records"})
		}
		log.Error("Failed to delete supplier", zap.Uint("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete supplier"})
	}

	log.Info("Supplier deleted", zap.Uint("supplier_id", id))
	return c.NoContent(http.StatusNoContent)
}
