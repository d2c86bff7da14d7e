package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"clientCompass/domain"
	"clientCompass/internal/repository/datafile"
	"clientCompass/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	DatasetHandler struct {
		ingestService IngestService
		dataDir       string
	}

	IngestService interface {
		LoadDir(ctx context.Context, dir string) (domain.IngestSummary, error)
		LoadZip(ctx context.Context, r io.ReaderAt, size int64, name string) (domain.IngestSummary, error)
	}
)

func NewDatasetHandler(svc IngestService, dataDir string) *DatasetHandler {
	return &DatasetHandler{
		ingestService: svc,
		dataDir:       dataDir,
	}
}

// POST /api/v1/datasets/upload
func (h *DatasetHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing file field"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	defer src.Close()

	// multipart files are not guaranteed to be seekable, buffer the archive
	buf, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	summary, err := h.ingestService.LoadZip(
		c.Request().Context(),
		bytes.NewReader(buf),
		int64(len(buf)),
		fileHeader.Filename,
	)
	if err != nil {
		logger.Error("Failed to ingest uploaded dataset", "file", fileHeader.Filename, "error", err)
		if errors.Is(err, datafile.ErrSchemaMismatch) {
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(summary))
}

// POST /api/v1/datasets/reload
func (h *DatasetHandler) Reload(c echo.Context) error {
	summary, err := h.ingestService.LoadDir(c.Request().Context(), h.dataDir)
	if err != nil {
		logger.Error("Failed to reload dataset directory", "dir", h.dataDir, "error", err)
		if errors.Is(err, datafile.ErrSchemaMismatch) {
			return c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
