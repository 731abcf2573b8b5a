package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iheushiram/umarote/models"
)

// Horses returns all horses, optionally filtered by name pattern.
func (h *Handler) Horses(c echo.Context) error {
	name := c.QueryParam("name")

	var horses []models.Horse
	q := h.db.NewSelect().Model(&horses).OrderExpr("h.name ASC")
	if name != "" {
		q = q.Where("h.name LIKE ?", "%"+name+"%")
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, horses)
}

// GetHorse returns a single horse by derived identifier.
func (h *Handler) GetHorse(c echo.Context) error {
	horse := &models.Horse{}
	err := h.db.NewSelect().Model(horse).
		Where("h.id = ?", c.Param("id")).
		Scan(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "horse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, horse)
}

// CreateHorses bulk-upserts horses keyed on id.
func (h *Handler) CreateHorses(c echo.Context) error {
	var horses []models.Horse
	if err := c.Bind(&horses); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(horses) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty horse list")
	}

	if err := upsertHorses(c.Request().Context(), h.db, horses); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, countResponse{Count: len(horses)})
}

// HorseResults returns all race results for one horse, newest first.
func (h *Handler) HorseResults(c echo.Context) error {
	var results []models.RaceResult
	err := h.db.NewSelect().Model(&results).
		Where("r.horse_id = ?", c.Param("id")).
		OrderExpr("r.date DESC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

type countResponse struct {
	Count int `json:"count"`
}
