package handler

import (
	"net/http"
	"time"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/repository"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/logger"
	"github.com/BrenoDPS/teste-tecnico-backend/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BulkHandler serves the per-entity bulk insert endpoints. Each call takes one
// entity type, writes the whole batch in a single transaction and returns the
// persisted rows in input order. One bad row discards the entire batch.
type BulkHandler struct {
	bulk *repository.BulkRepo
}

// NewBulkHandler creates the bulk ingestion handler
func NewBulkHandler(bulk *repository.BulkRepo) *BulkHandler {
	return &BulkHandler{bulk: bulk}
}

// CreateVehicles inserts a batch of vehicles
func (h *BulkHandler) CreateVehicles(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Vehicles []model.Vehicle `json:"vehicles"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid bulk vehicle payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if len(req.Vehicles) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicles list is empty"})
	}

	defer prometheus.TrackDBOperation("bulk_insert")(time.Now())
	created, err := h.bulk.CreateVehicles(c.Request().Context(), req.Vehicles)
	if err != nil {
		return h.bulkError(c, "vehicles", len(req.Vehicles), err)
	}

	prometheus.RecordBulkRows("vehicles", len(created))
	log.Info("Bulk vehicles created", zap.Int("count", len(created)))
	return c.JSON(http.StatusCreated, created)
}

// CreateParts inserts a batch of parts
func (h *BulkHandler) CreateParts(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Parts []model.Part `json:"parts"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid bulk part payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if len(req.Parts) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "parts list is empty"})
	}

	defer prometheus.TrackDBOperation("bulk_insert")(time.Now())
	created, err := h.bulk.CreateParts(c.Request().Context(), req.Parts)
	if err != nil {
		return h.bulkError(c, "parts", len(req.Parts), err)
	}

	prometheus.RecordBulkRows("parts", len(created))
	log.Info("Bulk parts created", zap.Int("count", len(created)))
	return c.JSON(http.StatusCreated, created)
}

// CreateSuppliers inserts a batch of suppliers
func (h *BulkHandler) CreateSuppliers(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Suppliers []model.Supplier `json:"suppliers"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid bulk supplier payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if len(req.Suppliers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "suppliers list is empty"})
	}

	defer prometheus.TrackDBOperation("bulk_insert")(time.Now())
	created, err := h.bulk.CreateSuppliers(c.Request().Context(), req.Suppliers)
	if err != nil {
		return h.bulkError(c, "suppliers", len(req.Suppliers), err)
	}

	prometheus.RecordBulkRows("suppliers", len(created))
	log.Info("Bulk suppliers created", zap.Int("count", len(created)))
	return c.JSON(http.StatusCreated, created)
}

// CreatePurchances inserts a batch of transactions
func (h *BulkHandler) CreatePurchances(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Purchances []model.Purchance `json:"purchances"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid bulk purchance payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if len(req.Purchances) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "purchances list is empty"})
	}

	defer prometheus.TrackDBOperation("bulk_insert")(time.Now())
	created, err := h.bulk.CreatePurchances(c.Request().Context(), req.Purchances)
	if err != nil {
		return h.bulkError(c, "purchances", len(req.Purchances), err)
	}

	prometheus.RecordBulkRows("purchances", len(created))
	log.Info("Bulk purchances created", zap.Int("count", len(created)))
	return c.JSON(http.StatusCreated, created)
}

// CreateWarranties inserts a batch of warranty claims
func (h *BulkHandler) CreateWarranties(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Warranties []model.Warranty `json:"warranties"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid bulk warranty payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if len(req.Warranties) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "warranties list is empty"})
	}

	defer prometheus.TrackDBOperation("bulk_insert")(time.Now())
	created, err := h.bulk.CreateWarranties(c.Request().Context(), req.Warranties)
	if err != nil {
		return h.bulkError(c, "warranties", len(req.Warranties), err)
	}

	prometheus.RecordBulkRows("warranties", len(created))
	log.Info("Bulk warranties created", zap.Int("count", len(created)))
	return c.JSON(http.StatusCreated, created)
}

func (h *BulkHandler) bulkError(c echo.Context, entity string, attempted int, err error) error {
	log := logger.FromContext(c)

	if repository.IsConstraintViolation(err) {
		log.Warn("Bulk insert rolled back on constraint violation",
			zap.String("entity", entity),
			zap.Int("attempted", attempted))
		return c.JSON(http.StatusConflict, echo.Map{"error": "batch violates a constraint; nothing was inserted"})
	}

	log.Error("Bulk insert failed",
		zap.String("entity", entity),
		zap.Int("attempted", attempted),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk insert failed"})
}
