package handler

import (
	"fmt"
	"strconv"

	"github.com/BrenoDPS/teste-tecnico-backend/internal/model"
	"github.com/BrenoDPS/teste-tecnico-backend/internal/repository"
	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
	"github.com/labstack/echo/v4"
)

// parsePagination reads skip/limit query parameters, applying the configured
// default and cap
func parsePagination(c echo.Context, cfg config.PaginationConfig) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	if skip < 0 {
		skip = 0
	}

	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = cfg.DefaultPageSize
	}
	if limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}
	return skip, limit
}

// parseIDParam reads the :id path parameter
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return uint(id), nil
}

// parseDateRange reads the optional start_date/end_date query parameters. The
// range is only built when both bounds are present; a lone bound is ignored,
// matching the historical API.
func parseDateRange(c echo.Context) (*repository.DateRange, error) {
	startStr := c.QueryParam("start_date")
	endStr := c.QueryParam("end_date")
	if startStr == "" || endStr == "" {
		return nil, nil
	}

	start, err := model.ParseDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseDate(endStr)
	if err != nil {
		return nil, err
	}
	return &repository.DateRange{Start: start, End: end}, nil
}

// parseUintQuery reads an optional numeric query parameter, zero when absent
func parseUintQuery(c echo.Context, name string) uint {
	value, _ := strconv.ParseUint(c.QueryParam(name), 10, 32)
	return uint(value)
}
