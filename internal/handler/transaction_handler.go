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

// TransactionRequest defines the structure for transaction creation/update
// requests
type TransactionRequest struct {
	PurchanceType string     `json:"purchance_type"`
	PurchanceDate model.Date `json:"purchance_date"`
	PartID        uint       `json:"part_id"`
}

// TransactionHandler serves CRUD endpoints over purchase records
type TransactionHandler struct {
	purchances *repository.PurchanceRepo
	pagination config.PaginationConfig
}

// NewTransactionHandler creates the transaction handler
func NewTransactionHandler(purchances *repository.PurchanceRepo, pagination config.PaginationConfig) *TransactionHandler {
	return &TransactionHandler{purchances: purchances, pagination: pagination}
}

// List retrieves transactions, filterable by type, date range and part
func (h *TransactionHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("transaction", "list")

	dateRange, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	skip, limit := parsePagination(c, h.pagination)
	filter := repository.PurchanceFilter{
		PurchanceType: c.QueryParam("purchance_type"),
		PartID:        parseUintQuery(c, "part_id"),
		Skip:          skip,
		Limit:         limit,
	}
	if dateRange != nil {
		filter.StartDate = &dateRange.Start
		filter.EndDate = &dateRange.End
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	purchances, err := h.purchances.List(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to retrieve transactions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve transactions"})
	}

	log.Info("Transactions retrieved", zap.Int("count", len(purchances)))
	return c.JSON(http.StatusOK, purchances)
}

// Get retrieves a transaction by ID
func (h *TransactionHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("transaction", "get")

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid transaction ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	purchance, err := h.purchances.Get(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "transaction not found"})
		}
		log.Error("Failed to retrieve transaction", zap.Uint("purchance_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve transaction"})
	}

	return c.JSON(http.StatusOK, purchance)
}

// Create inserts a new transaction
func (h *TransactionHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("transaction", "create")

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	purchance := model.Purchance{
		PurchanceType: req.PurchanceType,
		PurchanceDate: req.PurchanceDate,
		PartID:        req.PartID,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.purchances.Create(c.Request().Context(), &purchance); err != nil {
		if repository.IsConstraintViolation(err) {
			log.Warn("Transaction violates a constraint", zap.Error(err))
			return c.JSON(http.StatusConflict, echo.Map{"error": "transaction violates a constraint"})
		}
		log.Error("Failed to create transaction", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create transaction"})
	}

	log.Info("Transaction created",
		zap.Uint("purchance_id", purchance.PurchanceID),
		zap.String("type", purchance.PurchanceType))
	return c.JSON(http.StatusCreated, purchance)
}

// Update overwrites an existing transaction with the full payload
func (h *TransactionHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("transaction", "update")

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid transaction ID"})
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Uint("purchance_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	purchance := model.Purchance{
		PurchanceType: req.PurchanceType,
		PurchanceDate: req.PurchanceDate,
		PartID:        req.PartID,
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	updated, err := h.purchances.Update(c.Request().Context(), id, &purchance)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "transaction not found"})
		}
		log.Error("Failed to update transaction", zap.Uint("purchance_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update transaction"})
	}

	log.Info("Transaction updated", zap.Uint("purchance_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a transaction row
func (h *TransactionHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("transaction", "delete")

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid transaction ID"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.purchances.Delete(c.Request().Context(), id); err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "transaction not found"})
		}
		if repository.IsConstraintViolation(err) {
			log.Warn("Transaction still referenced", zap.Uint("purchance_id", id))
			return c.JSON(http.StatusConflict, echo.Map{"error": "transaction is referenced by other records"})
		}
		log.Error("Failed to delete transaction", zap.Uint("purchance_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete transaction"})
	}

	log.Info("Transaction deleted", zap.Uint("purchance_id", id))
	return c.NoContent(http.StatusNoContent)
}
