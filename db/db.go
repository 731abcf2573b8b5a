package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/iheushiram/umarote/config"
	"github.com/iheushiram/umarote/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order and declares the
// soft string-key references between them.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Horse)(nil),
		(*models.Race)(nil),
		(*models.TrackCondition)(nil),
		(*models.RaceResult)(nil),
		(*models.RaceEntry)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	constraints := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'race_results_race_fk') THEN ALTER TABLE race_results ADD CONSTRAINT race_results_race_fk FOREIGN KEY (race_id) REFERENCES races (race_id); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'race_results_horse_fk') THEN ALTER TABLE race_results ADD CONSTRAINT race_results_horse_fk FOREIGN KEY (horse_id) REFERENCES horses (id); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'race_entries_race_fk') THEN ALTER TABLE race_entries ADD CONSTRAINT race_entries_race_fk FOREIGN KEY (race_id) REFERENCES races (race_id); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'race_entries_horse_fk') THEN ALTER TABLE race_entries ADD CONSTRAINT race_entries_horse_fk FOREIGN KEY (horse_id) REFERENCES horses (id); END IF; END $$`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'track_conditions_no_dupes') THEN ALTER TABLE track_conditions ADD CONSTRAINT track_conditions_no_dupes UNIQUE (date, venue, surface); END IF; END $$`,
	}
	for _, stmt := range constraints {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("constraint: %v", err)
		}
	}

	return nil
}
