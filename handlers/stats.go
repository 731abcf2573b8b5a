package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iheushiram/umarote/models"
)

type statsResponse struct {
	Horses  int `json:"horses"`
	Races   int `json:"races"`
	Results int `json:"results"`
	Entries int `json:"entries"`
}

// Stats returns row counts for the main tables.
func (h *Handler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	horses, err := h.db.NewSelect().Model((*models.Horse)(nil)).Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	races, err := h.db.NewSelect().Model((*models.Race)(nil)).Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	results, err := h.db.NewSelect().Model((*models.RaceResult)(nil)).Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	entries, err := h.db.NewSelect().Model((*models.RaceEntry)(nil)).Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, statsResponse{
		Horses:  horses,
		Races:   races,
		Results: results,
		Entries: entries,
	})
}
