// cmd/migrate/main.go
// Migrates data from a legacy SQLite database (a Cloudflare D1 export) into
// the local PostgreSQL database, rewriting legacy 11-character race IDs to
// the canonical 12-character width on the way.
//
// Usage:
//
//	SQLITE_PATH=./umarote.db DB_PASS="pgpass" go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	_ "modernc.org/sqlite"

	"github.com/iheushiram/umarote/config"
	bundb "github.com/iheushiram/umarote/db"
	"github.com/iheushiram/umarote/ingest"
	"github.com/iheushiram/umarote/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- SQLite ---
	if cfg.SQLitePath == "" {
		log.Fatal("SQLITE_PATH required, e.g.: SQLITE_PATH=./umarote.db")
	}
	lite, err := sql.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	defer lite.Close()
	if err := lite.PingContext(ctx); err != nil {
		log.Fatalf("ping sqlite: %v", err)
	}
	log.Println("opened legacy SQLite database")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	// Disable FK enforcement so we can load in bulk without strict ordering
	if _, err := pgDB.ExecContext(ctx, "SET session_replication_role = 'replica'"); err != nil {
		log.Fatalf("disable FK: %v", err)
	}
	defer func() {
		if _, err := pgDB.ExecContext(ctx, "SET session_replication_role = 'origin'"); err != nil {
			log.Printf("re-enable FK: %v", err)
		}
	}()

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"horses", func() (int, error) { return migrateHorses(ctx, lite, pgDB) }},
		{"races", func() (int, error) { return migrateRaces(ctx, lite, pgDB) }},
		{"race_results", func() (int, error) { return migrateResults(ctx, lite, pgDB) }},
		{"race_entries", func() (int, error) { return migrateEntries(ctx, lite, pgDB) }},
	}

	for _, step := range steps {
		n, err := step.fn()
		if err != nil {
			log.Fatalf("migrate %s: %v", step.name, err)
		}
		log.Printf("migrated %d %s rows", n, step.name)
	}
}

func migrateHorses(ctx context.Context, lite *sql.DB, pg *bun.DB) (int, error) {
	rows, err := lite.QueryContext(ctx, `
		SELECT id, name, birth_date, sex, color, father, mother,
		       trainer, owner, breeder, earnings, current_race_id
		FROM horses`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Horse
	total := 0
	for rows.Next() {
		var h models.Horse
		var currentRace sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.BirthDate, &h.Sex, &h.Color,
			&h.Father, &h.Mother, &h.Trainer, &h.Owner, &h.Breeder,
			&h.Earnings, &currentRace); err != nil {
			return total, err
		}
		if currentRace.Valid {
			id := ingest.CanonicalRaceID(currentRace.String)
			h.CurrentRaceID = &id
		}
		batch = append(batch, h)
		if len(batch) == batchSize {
			if err := flush(ctx, pg, &batch, &total); err != nil {
				return total, err
			}
		}
	}
	if err := flush(ctx, pg, &batch, &total); err != nil {
		return total, err
	}
	return total, rows.Err()
}

func migrateRaces(ctx context.Context, lite *sql.DB, pg *bun.DB) (int, error) {
	rows, err := lite.QueryContext(ctx, `
		SELECT race_id, date, venue, meeting_number, day_number, race_no,
		       race_name, class_name, surface, distance, direction,
		       track_cond, field_size, status, weather
		FROM races`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Race
	total := 0
	for rows.Next() {
		var r models.Race
		var fieldSize sql.NullInt64
		var weather sql.NullString
		if err := rows.Scan(&r.RaceID, &r.Date, &r.Venue, &r.MeetingNumber,
			&r.DayNumber, &r.RaceNo, &r.RaceName, &r.ClassName, &r.Surface,
			&r.Distance, &r.Direction, &r.TrackCond, &fieldSize, &r.Status,
			&weather); err != nil {
			return total, err
		}
		r.RaceID = ingest.CanonicalRaceID(r.RaceID)
		if fieldSize.Valid {
			n := int(fieldSize.Int64)
			r.FieldSize = &n
		}
		if weather.Valid {
			r.Weather = &weather.String
		}
		if r.Status == "" {
			r.Status = "open"
		}
		batch = append(batch, r)
		if len(batch) == batchSize {
			if err := flush(ctx, pg, &batch, &total); err != nil {
				return total, err
			}
		}
	}
	if err := flush(ctx, pg, &batch, &total); err != nil {
		return total, err
	}
	return total, rows.Err()
}

func migrateResults(ctx context.Context, lite *sql.DB, pg *bun.DB) (int, error) {
	rows, err := lite.QueryContext(ctx, `
		SELECT id, race_id, horse_id, date, race_name, venue, course_type,
		       distance, direction, course_condition, finish_position,
		       jockey, weight, time, margin, pos1c, pos2c, pos3c, pos4c,
		       corner_passings, average_position, last_three_furlong,
		       average_three_furlong, odds, popularity
		FROM race_results`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.RaceResult
	total := 0
	for rows.Next() {
		var r models.RaceResult
		var finish, p1, p2, p3, p4 sql.NullInt64
		var corners, ave3F sql.NullString
		if err := rows.Scan(&r.ID, &r.RaceID, &r.HorseID, &r.Date, &r.RaceName,
			&r.Venue, &r.CourseType, &r.Distance, &r.Direction,
			&r.CourseCondition, &finish, &r.Jockey, &r.Weight, &r.Time,
			&r.Margin, &p1, &p2, &p3, &p4, &corners, &r.AveragePosition,
			&r.LastThreeFurlong, &ave3F, &r.Odds, &r.Popularity); err != nil {
			return total, err
		}
		oldRaceID := r.RaceID
		r.RaceID = ingest.CanonicalRaceID(r.RaceID)
		// Result IDs embed the race ID, so rewrite the prefix too.
		if r.RaceID != oldRaceID && len(r.ID) > len(oldRaceID) {
			r.ID = r.RaceID + r.ID[len(oldRaceID):]
		}
		r.FinishPosition = nullableInt(finish)
		r.Pos1c = nullableInt(p1)
		r.Pos2c = nullableInt(p2)
		r.Pos3c = nullableInt(p3)
		r.Pos4c = nullableInt(p4)
		if corners.Valid {
			r.CornerPassings = &corners.String
		}
		if ave3F.Valid {
			r.AverageThreeFurlong = &ave3F.String
		}
		batch = append(batch, r)
		if len(batch) == batchSize {
			if err := flush(ctx, pg, &batch, &total); err != nil {
				return total, err
			}
		}
	}
	if err := flush(ctx, pg, &batch, &total); err != nil {
		return total, err
	}
	return total, rows.Err()
}

func migrateEntries(ctx context.Context, lite *sql.DB, pg *bun.DB) (int, error) {
	rows, err := lite.QueryContext(ctx, `
		SELECT race_id, horse_id, date, frame_no, horse_no, age, jockey,
		       weight, trainer, affiliation, popularity, body_weight,
		       body_weight_diff, blinkers
		FROM race_entries`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.RaceEntry
	total := 0
	for rows.Next() {
		var e models.RaceEntry
		var popularity, bodyWeight, bodyWeightDiff sql.NullInt64
		var blinkers sql.NullBool
		if err := rows.Scan(&e.RaceID, &e.HorseID, &e.Date, &e.FrameNo,
			&e.HorseNo, &e.Age, &e.Jockey, &e.Weight, &e.Trainer,
			&e.Affiliation, &popularity, &bodyWeight, &bodyWeightDiff,
			&blinkers); err != nil {
			return total, err
		}
		e.RaceID = ingest.CanonicalRaceID(e.RaceID)
		// The legacy table used an autoincrement id; the new key is derived.
		e.ID = fmt.Sprintf("%s_%s", e.RaceID, e.HorseID)
		e.Popularity = nullableInt(popularity)
		e.BodyWeight = nullableInt(bodyWeight)
		e.BodyWeightDiff = nullableInt(bodyWeightDiff)
		e.Blinkers = blinkers.Valid && blinkers.Bool
		batch = append(batch, e)
		if len(batch) == batchSize {
			if err := flush(ctx, pg, &batch, &total); err != nil {
				return total, err
			}
		}
	}
	if err := flush(ctx, pg, &batch, &total); err != nil {
		return total, err
	}
	return total, rows.Err()
}

// flush bulk-inserts the batch, replacing any rows already present, and
// resets the slice.
func flush[T any](ctx context.Context, pg *bun.DB, batch *[]T, total *int) error {
	if len(*batch) == 0 {
		return nil
	}
	if _, err := pg.NewInsert().Model(batch).On("CONFLICT DO NOTHING").Exec(ctx); err != nil {
		return err
	}
	*total += len(*batch)
	*batch = (*batch)[:0]
	return nil
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
