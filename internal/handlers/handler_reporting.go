package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultMerchantLimit caps the merchant ranking when the caller does not
// ask for a specific size.
const defaultMerchantLimit = 10

// reportingHandler serves the charts aggregations.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/categories", h.spendingByCategory)
		reports.GET("/merchants", h.topMerchants)
		reports.GET("/owners", h.ownerComparison)
		reports.GET("/monthly", h.monthlyEvolution)
		reports.GET("/category-deltas", h.categoryDeltas)
	}
}

// summary godoc
// @Summary Ledger summary
// @Description Returns the headline statistics: transaction count, spend per owner and top category.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.LedgerSummary
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// spendingByCategory godoc
// @Summary Spending per category
// @Description Totals expenses per category, descending.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.CategorySpend
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/categories [get]
func (h *reportingHandler) spendingByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	spend, err := h.reportingService.SpendingByCategory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build category report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, spend)
}

// topMerchants godoc
// @Summary Top merchants
// @Description Ranks expense descriptions by total spend, descending.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {array} domain.MerchantSpend
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/merchants [get]
func (h *reportingHandler) topMerchants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultMerchantLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	merchants, err := h.reportingService.TopMerchants(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to build merchant report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, merchants)
}

// ownerComparison godoc
// @Summary Spending per account holder
// @Description Totals expenses per owner, both owners always present.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.OwnerSpend
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/owners [get]
func (h *reportingHandler) ownerComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owners, err := h.reportingService.OwnerComparison(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build owner report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, owners)
}

// monthlyEvolution godoc
// @Summary Monthly spending evolution
// @Description Totals expenses per calendar month per owner, months ascending.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.MonthlySpend
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyEvolution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, err := h.reportingService.MonthlyEvolution(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, months)
}

// categoryDeltas godoc
// @Summary Category spending deltas
// @Description Compares the current calendar month against the previous month and six months ago, per category.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.CategoryDelta
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/category-deltas [get]
func (h *reportingHandler) categoryDeltas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deltas, err := h.reportingService.CategoryDeltas(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to build category delta report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, deltas)
}
