package rest

import (
	"context"
	"net/http"
	"strconv"

	"clientCompass/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	ActionHandler struct {
		upliftService UpliftService
	}

	UpliftService interface {
		GetInvitees(ctx context.Context, actionID string, limit int) ([]domain.Invitee, error)
	}
)

func NewActionHandler(svc UpliftService) *ActionHandler {
	return &ActionHandler{upliftService: svc}
}

// GET /api/v1/actions/:id/invitees?n=10
func (h *ActionHandler) Invitees(c echo.Context) error {
	actionID := c.Param("id")
	if actionID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing action id"})
	}

	n := 0
	if v := c.QueryParam("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		n = parsed
	}

	invitees, err := h.upliftService.GetInvitees(c.Request().Context(), actionID, n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(invitees))
}
