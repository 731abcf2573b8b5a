package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iheushiram/umarote/ingest"
	"github.com/iheushiram/umarote/models"
)

// Races returns all races, optionally filtered by date (YYYYMMDD) or venue.
func (h *Handler) Races(c echo.Context) error {
	date := c.QueryParam("date")
	venue := c.QueryParam("venue")

	var races []models.Race
	q := h.db.NewSelect().Model(&races).
		OrderExpr("rc.date DESC, rc.race_no ASC")
	if date != "" {
		q = q.Where("rc.date = ?", date)
	}
	if venue != "" {
		q = q.Where("rc.venue = ?", venue)
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, races)
}

// GetRace returns one race. Legacy 11-character identifiers are accepted
// and resolved to the canonical width.
func (h *Handler) GetRace(c echo.Context) error {
	id := ingest.CanonicalRaceID(c.Param("id"))

	race := &models.Race{}
	err := h.db.NewSelect().Model(race).
		Where("rc.race_id = ?", id).
		Scan(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "race not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, race)
}

// CreateRaces bulk-upserts races keyed on race_id.
func (h *Handler) CreateRaces(c echo.Context) error {
	var races []models.Race
	if err := c.Bind(&races); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(races) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty race list")
	}
	for i := range races {
		races[i].RaceID = ingest.CanonicalRaceID(races[i].RaceID)
		if races[i].Status == "" {
			races[i].Status = "open"
		}
	}

	if err := upsertRaces(c.Request().Context(), h.db, races); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, countResponse{Count: len(races)})
}

// Dates returns all distinct race dates, newest first.
func (h *Handler) Dates(c echo.Context) error {
	var dates []string
	err := h.db.NewSelect().
		TableExpr("races").
		ColumnExpr("DISTINCT date").
		OrderExpr("date DESC").
		Scan(c.Request().Context(), &dates)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dates)
}
