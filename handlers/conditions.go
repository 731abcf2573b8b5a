package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iheushiram/umarote/models"
)

// TrackConditions returns going reports, optionally filtered by date.
func (h *Handler) TrackConditions(c echo.Context) error {
	date := c.QueryParam("date")

	var conds []models.TrackCondition
	q := h.db.NewSelect().Model(&conds).
		OrderExpr("tc.date DESC, tc.venue ASC")
	if date != "" {
		q = q.Where("tc.date = ?", date)
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, conds)
}

// CreateTrackConditions bulk-upserts going reports keyed on id.
func (h *Handler) CreateTrackConditions(c echo.Context) error {
	var conds []models.TrackCondition
	if err := c.Bind(&conds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(conds) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty condition list")
	}

	if err := upsertTrackConditions(c.Request().Context(), h.db, conds); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, countResponse{Count: len(conds)})
}
