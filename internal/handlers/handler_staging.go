package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dashfinanceiro/dashfin_app/internal/apperrors"
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
	"github.com/dashfinanceiro/dashfin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stagingHandler handles the verification workflow over the pending batch.
type stagingHandler struct {
	stagingService portssvc.StagingSvcFacade
}

func newStagingHandler(ss portssvc.StagingSvcFacade) *stagingHandler {
	return &stagingHandler{stagingService: ss}
}

// registerStagingRoutes registers the verification staging routes.
func registerStagingRoutes(rg *gin.RouterGroup, stagingService portssvc.StagingSvcFacade) {
	h := newStagingHandler(stagingService)

	staging := rg.Group("/staging")
	{
		staging.GET("", h.listPending)
		staging.PATCH("/:id", h.editPending)
		staging.DELETE("/:id", h.removePending)
		staging.POST("/commit", h.commitPending)
		staging.POST("/cancel", h.cancelPending)
	}
}

// listPending godoc
// @Summary List the pending batch
// @Description Returns the staged rows awaiting verification, their per-field validation errors, and the batch summary.
// @Tags staging
// @Produce json
// @Success 200 {object} dto.StagingResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staging [get]
func (h *stagingHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, rowErrors, summary, err := h.stagingService.ListPending(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pending batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load pending transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.StagingResponse{
		Transactions: dto.ToTransactionResponses(txns),
		RowErrors:    rowErrors,
		Summary:      summary,
		Valid:        !rowErrors.HasErrors(),
	})
}

// editPending godoc
// @Summary Edit one field of a staged row
// @Description Sets one field of a staged transaction. Numeric values that fail to parse are kept as invalid so the verification gate flags them.
// @Tags staging
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param edit body dto.EditPendingRequest true "Field and new value"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Unknown field"
// @Failure 404 {object} ErrorResponse "Row not staged"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staging/{id} [patch]
func (h *stagingHandler) editPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.EditPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.stagingService.EditPending(c.Request.Context(), transactionID, domain.TransactionField(req.Field), req.Value)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found in pending batch"})
		default:
			logger.Error("Failed to edit pending row", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to edit pending transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*updated))
}

// removePending godoc
// @Summary Remove a staged row
// @Description Drops one row from the pending batch. The committed ledger is untouched.
// @Tags staging
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Row not staged"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staging/{id} [delete]
func (h *stagingHandler) removePending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.stagingService.RemovePending(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found in pending batch"})
			return
		}
		logger.Error("Failed to remove pending row", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove pending transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}

// commitPending godoc
// @Summary Commit the pending batch
// @Description Appends every staged row to the committed ledger and clears the batch, all-or-nothing. Blocked with 409 while any row fails validation.
// @Tags staging
// @Produce json
// @Success 200 {object} dto.CommitResponse
// @Failure 409 {object} dto.StagingResponse "Batch has invalid rows; nothing committed"
// @Failure 422 {object} ErrorResponse "Nothing staged"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staging/commit [post]
func (h *stagingHandler) commitPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	committed, rowErrors, err := h.stagingService.CommitPending(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCommitBlocked):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Pending batch has invalid rows; fix them before committing",
				"rowErrors": rowErrors,
			})
		case errors.Is(err, apperrors.ErrEmptyBatch):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "No pending transactions to commit"})
		default:
			logger.Error("Failed to commit pending batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to commit pending transactions"})
		}
		return
	}

	logger.Info("Pending batch committed", slog.Int("committed", committed))
	c.JSON(http.StatusOK, dto.CommitResponse{Committed: committed})
}

// cancelPending godoc
// @Summary Discard the pending batch
// @Description Empties the pending batch without touching the committed ledger.
// @Tags staging
// @Produce json
// @Success 204 "Discarded"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staging/cancel [post]
func (h *stagingHandler) cancelPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.stagingService.CancelPending(c.Request.Context()); err != nil {
		logger.Error("Failed to cancel pending batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to discard pending transactions"})
		return
	}

	c.Status(http.StatusNoContent)
}
