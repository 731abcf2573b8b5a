package models

import "github.com/uptrace/bun"

// RaceResult holds one horse's performance in one race. The id is
// raceID_horseID_rowIndex so duplicate (race, horse) pairs from re-runs or
// reinstated entries never collide within an upload.
type RaceResult struct {
	bun.BaseModel `bun:"table:race_results,alias:r"`

	ID                  string  `bun:"id,pk" json:"id"`
	RaceID              string  `bun:"race_id,notnull" json:"raceId"`
	HorseID             string  `bun:"horse_id,notnull" json:"horseId"`
	Date                string  `bun:"date,notnull" json:"date"`
	RaceName            string  `bun:"race_name,notnull,default:''" json:"raceName"`
	Venue               string  `bun:"venue,notnull" json:"venue"`
	CourseType          string  `bun:"course_type,notnull" json:"courseType"`
	Distance            int     `bun:"distance,notnull" json:"distance"`
	Direction           string  `bun:"direction,notnull" json:"direction"`
	CourseCondition     string  `bun:"course_condition,notnull" json:"courseCondition"`
	FinishPosition      *int    `bun:"finish_position" json:"finishPosition"`
	Jockey              string  `bun:"jockey,notnull,default:''" json:"jockey"`
	Weight              float64 `bun:"weight,notnull,default:0" json:"weight"`
	Time                string  `bun:"time,notnull,default:''" json:"time"`
	Margin              string  `bun:"margin,notnull,default:''" json:"margin"`
	Pos1c               *int    `bun:"pos1c" json:"pos1c,omitempty"`
	Pos2c               *int    `bun:"pos2c" json:"pos2c,omitempty"`
	Pos3c               *int    `bun:"pos3c" json:"pos3c,omitempty"`
	Pos4c               *int    `bun:"pos4c" json:"pos4c,omitempty"`
	CornerPassings      *string `bun:"corner_passings" json:"cornerPassings,omitempty"`
	AveragePosition     float64 `bun:"average_position,notnull,default:0" json:"averagePosition"`
	LastThreeFurlong    string  `bun:"last_three_furlong,notnull,default:''" json:"lastThreeFurlong"`
	AverageThreeFurlong *string `bun:"average_three_furlong" json:"averageThreeFurlong,omitempty"`
	Odds                float64 `bun:"odds,notnull,default:0" json:"odds"`
	Popularity          int     `bun:"popularity,notnull,default:0" json:"popularity"`
}
