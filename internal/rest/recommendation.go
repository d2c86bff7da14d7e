package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"clientCompass/business/recommend"
	"clientCompass/domain"
	"clientCompass/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
	}

	RecommendService interface {
		SimilarClients(ctx context.Context, seedIDs []string, limit int) ([]domain.ClientRecommendation, error)
	}

	SimilarClientsRequest struct {
		SeedIDs []string `json:"seed_ids" validate:"required,min=1,dive,required"`
		N       int      `json:"n"`
	}
)

func NewRecommendationHandler(svc RecommendService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// POST /api/v1/recommendations/similar-clients
func (h *RecommendationHandler) SimilarClients(c echo.Context) error {
	start := time.Now()

	var req SimilarClientsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if req.N <= 0 {
		req.N = 10
	}

	metrics.RecommendRequests.Inc()

	recs, err := h.recommendService.SimilarClients(c.Request().Context(), req.SeedIDs, req.N)
	if err != nil {
		if errors.Is(err, recommend.ErrSeedNotFound) {
			metrics.RecommendSeedNotFound.Inc()
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
