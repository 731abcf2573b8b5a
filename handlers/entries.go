package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iheushiram/umarote/ingest"
	"github.com/iheushiram/umarote/models"
)

// Entries returns the declared starters for a race.
func (h *Handler) Entries(c echo.Context) error {
	raceID := c.QueryParam("raceId")
	if raceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing raceId param")
	}

	var entries []models.RaceEntry
	err := h.db.NewSelect().Model(&entries).
		Where("e.race_id = ?", ingest.CanonicalRaceID(raceID)).
		OrderExpr("e.horse_no ASC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateEntries bulk-upserts race entries keyed on id (raceID_horseID).
func (h *Handler) CreateEntries(c echo.Context) error {
	var entries []models.RaceEntry
	if err := c.Bind(&entries); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(entries) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty entry list")
	}

	if err := upsertEntries(c.Request().Context(), h.db, entries); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, countResponse{Count: len(entries)})
}
