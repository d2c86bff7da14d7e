package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clientCompass/business/recommend"
	"clientCompass/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommendService struct {
	recs      []domain.ClientRecommendation
	err       error
	lastSeeds []string
	lastLimit int
}

func (s *stubRecommendService) SimilarClients(ctx context.Context, seedIDs []string, limit int) ([]domain.ClientRecommendation, error) {
	s.lastSeeds = seedIDs
	s.lastLimit = limit
	return s.recs, s.err
}

func doSimilarClients(t *testing.T, svc RecommendService, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations/similar-clients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRecommendationHandler(svc)
	require.NoError(t, handler.SimilarClients(c))

	return rec
}

func TestSimilarClientsHandler_OK(t *testing.T) {
	svc := &stubRecommendService{recs: []domain.ClientRecommendation{
		{ClientID: "c1", Score: 9},
		{ClientID: "c2", Score: 4},
	}}

	rec := doSimilarClients(t, svc, `{"seed_ids":["s1","s2"],"n":5}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"s1", "s2"}, svc.lastSeeds)
	assert.Equal(t, 5, svc.lastLimit)
	assert.Contains(t, rec.Body.String(), `"c1"`)
}

func TestSimilarClientsHandler_DefaultLimit(t *testing.T) {
	svc := &stubRecommendService{}

	rec := doSimilarClients(t, svc, `{"seed_ids":["s1"]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, svc.lastLimit)
}

func TestSimilarClientsHandler_MissingSeeds(t *testing.T) {
	svc := &stubRecommendService{}

	rec := doSimilarClients(t, svc, `{"seed_ids":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastSeeds)
}

func TestSimilarClientsHandler_SeedNotFound(t *testing.T) {
	svc := &stubRecommendService{err: recommend.ErrSeedNotFound}

	rec := doSimilarClients(t, svc, `{"seed_ids":["missing"]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "seed client not found")
}

func TestSimilarClientsHandler_ServiceError(t *testing.T) {
	svc := &stubRecommendService{err: assert.AnError}

	rec := doSimilarClients(t, svc, `{"seed_ids":["s1"]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSimilarClientsHandler_BadJSON(t *testing.T) {
	svc := &stubRecommendService{}

	rec := doSimilarClients(t, svc, `{not-json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
