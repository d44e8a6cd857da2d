package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	portssvc "github.com/dashfinanceiro/dashfin_app/internal/core/ports/services"
	"github.com/dashfinanceiro/dashfin_app/internal/dto"
	"github.com/dashfinanceiro/dashfin_app/internal/importer"
	"github.com/dashfinanceiro/dashfin_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles bank statement uploads.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers the statement import route.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.POST("/import", h.importStatement)
	}
}

// importStatement godoc
// @Summary Import a bank statement
// @Description Uploads a CSV statement, parses and auto-categorizes it, and stages the rows for verification. Replaces any previous pending batch.
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV statement export"
// @Param owner formData string true "Account holder" Enums(Daniela, Giovani)
// @Success 200 {object} dto.ImportStatementResponse
// @Failure 400 {object} ErrorResponse "Empty file, missing columns or unknown owner"
// @Failure 500 {object} ErrorResponse "Failed to stage the batch"
// @Security BearerAuth
// @Router /statements/import [post]
func (h *statementHandler) importStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, ok := domain.ParseOwner(c.PostForm("owner"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown owner: " + c.PostForm("owner")})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Statement upload missing file part", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A 'file' form field with the CSV statement is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	logger.Info("Received statement import",
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size_bytes", fileHeader.Size),
		slog.String("owner", string(owner)))

	staged, err := h.statementService.ImportStatement(c.Request.Context(), file, owner)
	if err != nil {
		var emptyErr *importer.EmptyInputError
		var columnsErr *importer.MissingColumnsError
		switch {
		case errors.As(err, &emptyErr):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: emptyErr.Error()})
		case errors.As(err, &columnsErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Required columns are missing from the statement",
				"missing": columnsErr.Missing,
				"found":   columnsErr.Found,
			})
		default:
			logger.Error("Failed to import statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ImportStatementResponse{
		Staged:       len(staged),
		Transactions: dto.ToTransactionResponses(staged),
	})
}
