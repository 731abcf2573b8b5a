package ingest

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iheushiram/umarote/models"
)

// Batch is the reconciled output of one CSV file: deduplicated entity sets
// in first-seen order, plus every row-scoped error accumulated on the way.
// Partial success is the normal case; the caller decides whether any
// errors are fatal to the upload as a whole.
type Batch struct {
	Races   []models.Race       `json:"races"`
	Horses  []models.Horse      `json:"horses"`
	Results []models.RaceResult `json:"results"`
	Entries []models.RaceEntry  `json:"entries"`
	Errors  []string            `json:"errors"`
}

// Reconcile runs the row transformer across every data row of a file and
// merges the outputs by derived identifier. Races and entries are
// last-write-wins on collision (later rows in real exports tend to carry
// more complete data); duplicate horses merge additively on earnings and
// fill a blank trainer. Row failures are recorded with their 1-based row
// number and never abort the batch.
//
// Each call owns its own maps, so independent batches may be reconciled
// concurrently. The logger only speaks at debug level; pass zap.NewNop()
// to silence it.
func Reconcile(headers []string, rows [][]string, log *zap.Logger) Batch {
	if log == nil {
		log = zap.NewNop()
	}
	format := ClassifyFormat(headers)
	log.Debug("reconciling batch",
		zap.Int("rows", len(rows)),
		zap.Bool("japanese", format == FormatJapanese))

	var batch Batch
	raceIdx := map[string]int{}
	horseIdx := map[string]int{}
	entryIdx := map[string]int{}

	for i, values := range rows {
		result, horse, err := TransformRow(format, headers, values, i)
		if err != nil {
			msg := fmt.Sprintf("row %d: %v", i+1, err)
			log.Debug("row rejected", zap.Int("row", i+1), zap.Error(err))
			batch.Errors = append(batch.Errors, msg)
			continue
		}

		batch.Results = append(batch.Results, *result)

		if horse != nil {
			if at, ok := horseIdx[horse.ID]; ok {
				existing := &batch.Horses[at]
				existing.Earnings += horse.Earnings
				if existing.Trainer == "" && horse.Trainer != "" {
					existing.Trainer = horse.Trainer
				}
			} else {
				horseIdx[horse.ID] = len(batch.Horses)
				batch.Horses = append(batch.Horses, *horse)
			}
		}

		if race := ExtractRace(format, headers, values); race != nil {
			if at, ok := raceIdx[race.RaceID]; ok {
				batch.Races[at] = *race
			} else {
				raceIdx[race.RaceID] = len(batch.Races)
				batch.Races = append(batch.Races, *race)
			}
		}

		entry, err := ExtractEntry(format, headers, values)
		if err != nil {
			log.Debug("entry skipped", zap.Int("row", i+1), zap.Error(err))
			continue
		}
		if entry != nil {
			if at, ok := entryIdx[entry.ID]; ok {
				batch.Entries[at] = *entry
			} else {
				entryIdx[entry.ID] = len(batch.Entries)
				batch.Entries = append(batch.Entries, *entry)
			}
		}
	}

	log.Debug("batch reconciled",
		zap.Int("races", len(batch.Races)),
		zap.Int("horses", len(batch.Horses)),
		zap.Int("results", len(batch.Results)),
		zap.Int("entries", len(batch.Entries)),
		zap.Int("errors", len(batch.Errors)))
	return batch
}
