package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"clientCompass/business/analytics"
	"clientCompass/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	AnalyticsHandler struct {
		analyticsService AnalyticsService
	}

	AnalyticsService interface {
		KPIs(ctx context.Context, f analytics.Filter) (domain.KPIReport, error)
		MonthlyGrossAmount(ctx context.Context, f analytics.Filter) ([]domain.MonthlyAmount, error)
		AttendanceByCountry(ctx context.Context, f analytics.Filter, top int) ([]domain.CountryAttendance, error)
		EventDurations(ctx context.Context, f analytics.Filter) ([]domain.EventDuration, error)
	}
)

const dateLayout = "2006-01-02"

func NewAnalyticsHandler(svc AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: svc}
}

// parseFilter reads the shared dashboard filters from query params.
func parseFilter(c echo.Context) (analytics.Filter, error) {
	var f analytics.Filter

	if v := c.QueryParam("start_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, err
		}
		f.StartDate = t
	}

	if v := c.QueryParam("end_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, err
		}
		f.EndDate = t
	}

	if v := c.QueryParam("attendance"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, err
		}
		f.Attendance = &b
	}

	f.EventType = c.QueryParam("event_type")
	f.Country = c.QueryParam("country")
	f.PremiumStatus = c.QueryParam("premium_status")

	return f, nil
}

// GET /api/v1/analytics/kpis
func (h *AnalyticsHandler) KPIs(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	report, err := h.analyticsService.KPIs(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

// GET /api/v1/analytics/monthly-gross-amount
func (h *AnalyticsHandler) MonthlyAmounts(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	series, err := h.analyticsService.MonthlyGrossAmount(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(series))
}

// GET /api/v1/analytics/attendance-by-country?top=10
func (h *AnalyticsHandler) AttendanceByCountry(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	top := 0
	if v := c.QueryParam("top"); v != "" {
		top, err = strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
	}

	rows, err := h.analyticsService.AttendanceByCountry(c.Request().Context(), f, top)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}

// GET /api/v1/analytics/event-durations
func (h *AnalyticsHandler) EventDurations(c echo.Context) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rows, err := h.analyticsService.EventDurations(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rows))
}
