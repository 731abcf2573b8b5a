package models

import "github.com/uptrace/bun"

// RaceEntry is a declared starter on a race card, keyed raceID_horseID.
type RaceEntry struct {
	bun.BaseModel `bun:"table:race_entries,alias:e"`

	ID             string  `bun:"id,pk" json:"id"`
	RaceID         string  `bun:"race_id,notnull" json:"raceId"`
	HorseID        string  `bun:"horse_id,notnull" json:"horseId"`
	Date           string  `bun:"date,notnull" json:"date"`
	FrameNo        int     `bun:"frame_no,notnull" json:"frameNo"`
	HorseNo        int     `bun:"horse_no,notnull" json:"horseNo"`
	Age            int     `bun:"age,notnull" json:"age"`
	Jockey         string  `bun:"jockey,notnull,default:''" json:"jockey"`
	Weight         float64 `bun:"weight,notnull" json:"weight"`
	Trainer        string  `bun:"trainer,notnull,default:''" json:"trainer"`
	Affiliation    string  `bun:"affiliation,notnull,default:''" json:"affiliation"`
	Popularity     *int    `bun:"popularity" json:"popularity,omitempty"`
	BodyWeight     *int    `bun:"body_weight" json:"bodyWeight,omitempty"`
	BodyWeightDiff *int    `bun:"body_weight_diff" json:"bodyWeightDiff,omitempty"`
	Blinkers       bool    `bun:"blinkers,notnull,default:false" json:"blinkers"`
}
