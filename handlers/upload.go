package handlers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iheushiram/umarote/ingest"
)

type uploadResponse struct {
	Races   int      `json:"races"`
	Horses  int      `json:"horses"`
	Results int      `json:"results"`
	Entries int      `json:"entries"`
	Errors  []string `json:"errors"`
}

// UploadResults ingests a race-result CSV export: decode, reconcile,
// upsert races, horses, results and entries. Row-scoped errors come back
// in the response; the rows that parsed are persisted regardless.
func (h *Handler) UploadResults(c echo.Context) error {
	batch, err := h.readBatch(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer tx.Rollback()

	// Races and horses first so the FK targets exist.
	if err := upsertRaces(ctx, tx, batch.Races); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := upsertHorses(ctx, tx, batch.Horses); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := upsertResults(ctx, tx, batch.Results); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := upsertEntries(ctx, tx, batch.Entries); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.log.Info("result upload persisted",
		zap.Int("races", len(batch.Races)),
		zap.Int("horses", len(batch.Horses)),
		zap.Int("results", len(batch.Results)),
		zap.Int("entries", len(batch.Entries)),
		zap.Int("errors", len(batch.Errors)))

	return c.JSON(http.StatusOK, batchSummary(batch))
}

// UploadEntries ingests a race-card CSV: races, horses and entries only.
func (h *Handler) UploadEntries(c echo.Context) error {
	batch, err := h.readBatch(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer tx.Rollback()

	if err := upsertRaces(ctx, tx, batch.Races); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := upsertHorses(ctx, tx, batch.Horses); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := upsertEntries(ctx, tx, batch.Entries); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summary := batchSummary(batch)
	summary.Results = 0
	return c.JSON(http.StatusOK, summary)
}

// UploadHorses ingests a horse-master CSV: horse records only.
func (h *Handler) UploadHorses(c echo.Context) error {
	batch, err := h.readBatch(c)
	if err != nil {
		return err
	}

	if err := upsertHorses(c.Request().Context(), h.db, batch.Horses); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Horses: len(batch.Horses),
		Errors: errList(batch.Errors),
	})
}

// readBatch pulls the multipart "file" field, decodes it (Shift_JIS first,
// UTF-8 on mojibake) and reconciles it into entity sets.
func (h *Handler) readBatch(c echo.Context) (ingest.Batch, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return ingest.Batch{}, echo.NewHTTPError(http.StatusBadRequest, "missing file field")
	}
	f, err := fh.Open()
	if err != nil {
		return ingest.Batch{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return ingest.Batch{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	headers, rows := ingest.ParseCSV(ingest.DecodeCSV(raw))
	if len(headers) == 0 {
		return ingest.Batch{}, echo.NewHTTPError(http.StatusBadRequest, "empty CSV file")
	}

	return ingest.Reconcile(headers, rows, h.log), nil
}

func batchSummary(b ingest.Batch) uploadResponse {
	return uploadResponse{
		Races:   len(b.Races),
		Horses:  len(b.Horses),
		Results: len(b.Results),
		Entries: len(b.Entries),
		Errors:  errList(b.Errors),
	}
}

// errList keeps the JSON field an array, never null.
func errList(errs []string) []string {
	if errs == nil {
		return []string{}
	}
	return errs
}
