package models

import "github.com/uptrace/bun"

// TrackCondition records the going for one surface at one venue on one day.
type TrackCondition struct {
	bun.BaseModel `bun:"table:track_conditions,alias:tc"`

	ID           string   `bun:"id,pk" json:"id"`
	Date         string   `bun:"date,notnull" json:"date"`
	Venue        string   `bun:"venue,notnull" json:"venue"`
	Surface      string   `bun:"surface,notnull" json:"surface"`
	TrackCond    string   `bun:"track_cond,notnull" json:"trackCond"`
	CushionValue *float64 `bun:"cushion_value" json:"cushionValue,omitempty"`
	Notes        *string  `bun:"notes" json:"notes,omitempty"`
}
