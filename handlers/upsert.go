package handlers

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/iheushiram/umarote/models"
)

// Upserts share one contract: insert-or-update keyed on the primary key,
// with every non-key column unconditionally overwritten on conflict.
// Batch-local merging has already happened in the reconciler; by the time
// records reach here, last one in wins.

func upsertHorses(ctx context.Context, db bun.IDB, horses []models.Horse) error {
	if len(horses) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&horses).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("birth_date = EXCLUDED.birth_date").
		Set("sex = EXCLUDED.sex").
		Set("color = EXCLUDED.color").
		Set("father = EXCLUDED.father").
		Set("mother = EXCLUDED.mother").
		Set("trainer = EXCLUDED.trainer").
		Set("owner = EXCLUDED.owner").
		Set("breeder = EXCLUDED.breeder").
		Set("earnings = EXCLUDED.earnings").
		Set("current_race_id = EXCLUDED.current_race_id").
		Exec(ctx)
	return err
}

func upsertRaces(ctx context.Context, db bun.IDB, races []models.Race) error {
	if len(races) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&races).
		On("CONFLICT (race_id) DO UPDATE").
		Set("date = EXCLUDED.date").
		Set("venue = EXCLUDED.venue").
		Set("meeting_number = EXCLUDED.meeting_number").
		Set("day_number = EXCLUDED.day_number").
		Set("race_no = EXCLUDED.race_no").
		Set("race_name = EXCLUDED.race_name").
		Set("class_name = EXCLUDED.class_name").
		Set("surface = EXCLUDED.surface").
		Set("distance = EXCLUDED.distance").
		Set("direction = EXCLUDED.direction").
		Set("track_cond = EXCLUDED.track_cond").
		Set("field_size = EXCLUDED.field_size").
		Set("status = EXCLUDED.status").
		Set("weather = EXCLUDED.weather").
		Exec(ctx)
	return err
}

func upsertResults(ctx context.Context, db bun.IDB, results []models.RaceResult) error {
	if len(results) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&results).
		On("CONFLICT (id) DO UPDATE").
		Set("race_id = EXCLUDED.race_id").
		Set("horse_id = EXCLUDED.horse_id").
		Set("date = EXCLUDED.date").
		Set("race_name = EXCLUDED.race_name").
		Set("venue = EXCLUDED.venue").
		Set("course_type = EXCLUDED.course_type").
		Set("distance = EXCLUDED.distance").
		Set("direction = EXCLUDED.direction").
		Set("course_condition = EXCLUDED.course_condition").
		Set("finish_position = EXCLUDED.finish_position").
		Set("jockey = EXCLUDED.jockey").
		Set("weight = EXCLUDED.weight").
		Set("time = EXCLUDED.time").
		Set("margin = EXCLUDED.margin").
		Set("pos1c = EXCLUDED.pos1c").
		Set("pos2c = EXCLUDED.pos2c").
		Set("pos3c = EXCLUDED.pos3c").
		Set("pos4c = EXCLUDED.pos4c").
		Set("corner_passings = EXCLUDED.corner_passings").
		Set("average_position = EXCLUDED.average_position").
		Set("last_three_furlong = EXCLUDED.last_three_furlong").
		Set("average_three_furlong = EXCLUDED.average_three_furlong").
		Set("odds = EXCLUDED.odds").
		Set("popularity = EXCLUDED.popularity").
		Exec(ctx)
	return err
}

func upsertEntries(ctx context.Context, db bun.IDB, entries []models.RaceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&entries).
		On("CONFLICT (id) DO UPDATE").
		Set("race_id = EXCLUDED.race_id").
		Set("horse_id = EXCLUDED.horse_id").
		Set("date = EXCLUDED.date").
		Set("frame_no = EXCLUDED.frame_no").
		Set("horse_no = EXCLUDED.horse_no").
		Set("age = EXCLUDED.age").
		Set("jockey = EXCLUDED.jockey").
		Set("weight = EXCLUDED.weight").
		Set("trainer = EXCLUDED.trainer").
		Set("affiliation = EXCLUDED.affiliation").
		Set("popularity = EXCLUDED.popularity").
		Set("body_weight = EXCLUDED.body_weight").
		Set("body_weight_diff = EXCLUDED.body_weight_diff").
		Set("blinkers = EXCLUDED.blinkers").
		Exec(ctx)
	return err
}

func upsertTrackConditions(ctx context.Context, db bun.IDB, conds []models.TrackCondition) error {
	if len(conds) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&conds).
		On("CONFLICT (id) DO UPDATE").
		Set("date = EXCLUDED.date").
		Set("venue = EXCLUDED.venue").
		Set("surface = EXCLUDED.surface").
		Set("track_cond = EXCLUDED.track_cond").
		Set("cushion_value = EXCLUDED.cushion_value").
		Set("notes = EXCLUDED.notes").
		Exec(ctx)
	return err
}
