package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/rishi-nd08/career-guidance/pkg/api/errors"
	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
)

// MarketDataHandler serves company snapshots, trends, and layoff stats
type MarketDataHandler struct {
	service *marketdata.Service
}

// NewMarketDataHandler creates a new market data handler
func NewMarketDataHandler(service *marketdata.Service) *MarketDataHandler {
	return &MarketDataHandler{service: service}
}

// GetMarketData godoc
// @Summary Get market data for a company
// @Description Company snapshot matched by case-insensitive substring, refreshed when older than 7 days
// @Tags MarketData
// @Produce json
// @Param company path string true "Company name"
// @Success 200 {object} models.CompanySnapshot
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/market-data/{company} [get]
func (h *MarketDataHandler) GetMarketData(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	company := c.Param("company")
	snapshot, err := h.service.GetCompany(ctx, company)
	if errors.Is(err, marketdata.ErrCompanyNotFound) {
		return apierrors.NotFoundError(c, "company")
	}
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// GetMarketTrends godoc
// @Summary Get current job market trends
// @Tags MarketData
// @Produce json
// @Success 200 {array} models.MarketTrend
// @Router /api/market-trends [get]
func (h *MarketDataHandler) GetMarketTrends(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	trends, err := h.service.GetMarketTrends(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, trends)
}

// GetLayoffStatistics godoc
// @Summary Get current layoff statistics
// @Tags MarketData
// @Produce json
// @Success 200 {array} models.LayoffRecord
// @Router /api/layoff-stats [get]
func (h *MarketDataHandler) GetLayoffStatistics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	layoffs, err := h.service.GetLayoffStatistics(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, layoffs)
}
