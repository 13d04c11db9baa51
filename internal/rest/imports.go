package rest

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"wareFlow/business/imports"
	"wareFlow/domain"
	"wareFlow/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ImportsService interface {
	ImportWorkbook(ctx context.Context, filename string, data []byte, columnMapJSON string) (imports.BatchResult, error)
	ListBatches(ctx context.Context) ([]imports.BatchView, error)
	RollbackBatch(ctx context.Context, batchID uint) error
	ListFailed(ctx context.Context, batchID uint) ([]domain.ImportFailed, error)
	ClearFailed(ctx context.Context, batchID uint) error
	ListPendingPrices(ctx context.Context) ([]imports.PendingPriceView, error)
	ConfirmPendingPrice(ctx context.Context, recordID uint, sellPrice float64) error
}

type ImportsHandler struct {
	importsService ImportsService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewImportsHandler(importsService ImportsService) *ImportsHandler {
	return &ImportsHandler{
		importsService: importsService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

// ConfirmPriceRequest carries the confirmed sell price. The value is stored
// as supplied; an explicit 0 is a valid price.
type ConfirmPriceRequest struct {
	SellPrice float64 `json:"sell_price"`
}

// UploadWorkbook reads the spreadsheet and the optional column_map form field
// and runs the import pipeline. Imports parse the whole file in memory, so the
// timeout here is looser than on the other endpoints.
func (h *ImportsHandler) UploadWorkbook(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	columnMapJSON := c.FormValue("column_map")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	result, err := h.importsService.ImportWorkbook(ctx, fileHeader.Filename, data, columnMapJSON)
	if err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(result))
}

func (h *ImportsHandler) GetBatches(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	batches, err := h.importsService.ListBatches(ctx)
	if err != nil {
		logger.Error("Failed to list import batches", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(batches))
}

func (h *ImportsHandler) RollbackBatch(c echo.Context) error {
	batchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid batch id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.importsService.RollbackBatch(ctx, uint(batchID)); err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Import batch rolled back",
	})
}

func (h *ImportsHandler) GetFailedRows(c echo.Context) error {
	batchID, err := strconv.ParseUint(c.Param("batchId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid batch id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.importsService.ListFailed(ctx, uint(batchID))
	if err != nil {
		logger.Error("Failed to list failed import rows", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}

func (h *ImportsHandler) ClearFailedRows(c echo.Context) error {
	batchID, err := strconv.ParseUint(c.Param("batchId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid batch id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.importsService.ClearFailed(ctx, uint(batchID)); err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Failed rows cleared",
	})
}

func (h *ImportsHandler) GetPendingPrices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	records, err := h.importsService.ListPendingPrices(ctx)
	if err != nil {
		logger.Error("Failed to list pending prices", err)
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(records))
}

func (h *ImportsHandler) ConfirmPendingPrice(c echo.Context) error {
	recordID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid record id"})
	}

	var req ConfirmPriceRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.importsService.ConfirmPendingPrice(ctx, uint(recordID), req.SellPrice); err != nil {
		return c.JSON(errorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Sell price confirmed",
	})
}
