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

// transactionHandler handles the committed-ledger table view.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes over the committed ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.PATCH("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List committed transactions
// @Description Returns the committed ledger in insertion order.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// updateTransaction godoc
// @Summary Update a committed transaction
// @Description Merges the given fields into the matching ledger record. Absent fields stay untouched.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param update body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid or empty patch"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		default:
			logger.Error("Failed to update transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(*updated))
}

// deleteTransaction godoc
// @Summary Delete a committed transaction
// @Description Removes the matching ledger record. Deleting an absent ID succeeds without effect.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
