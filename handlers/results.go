package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iheushiram/umarote/ingest"
	"github.com/iheushiram/umarote/models"
)

// Results returns race results filtered by raceId and/or horseId.
func (h *Handler) Results(c echo.Context) error {
	raceID := c.QueryParam("raceId")
	horseID := c.QueryParam("horseId")

	var results []models.RaceResult
	q := h.db.NewSelect().Model(&results).
		OrderExpr("r.date DESC, r.finish_position ASC NULLS LAST")
	if raceID != "" {
		q = q.Where("r.race_id = ?", ingest.CanonicalRaceID(raceID))
	}
	if horseID != "" {
		q = q.Where("r.horse_id = ?", horseID)
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

// CreateResults bulk-upserts race results keyed on id.
func (h *Handler) CreateResults(c echo.Context) error {
	var results []models.RaceResult
	if err := c.Bind(&results); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(results) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty result list")
	}
	for i := range results {
		results[i].RaceID = ingest.CanonicalRaceID(results[i].RaceID)
	}

	if err := upsertResults(c.Request().Context(), h.db, results); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, countResponse{Count: len(results)})
}
