package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
	"github.com/dashfinanceiro/dashfin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles the append-only investment ledger.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func newInvestmentHandler(is portssvc.InvestmentSvcFacade) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers the investment routes.
func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := newInvestmentHandler(investmentService)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
	}
}

// createInvestment godoc
// @Summary Record a new investment
// @Description Appends a position to the investment ledger. Positions are never updated or deleted.
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.investmentService.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create investment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create investment"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(*created))
}

// listInvestments godoc
// @Summary List investments
// @Description Returns the investment ledger with 1/5/10-year compound projections and per-owner totals.
// @Tags investments
// @Produce json
// @Success 200 {object} dto.ListInvestmentsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list investments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load investments"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
