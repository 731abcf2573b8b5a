package models

import "github.com/uptrace/bun"

// Race represents a single race on a single card. The race_id is the
// 12-character derived identifier: year + venue code + meeting + day + race
// number (all zero-padded).
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	RaceID        string  `bun:"race_id,pk" json:"raceId"`
	Date          string  `bun:"date,notnull" json:"date"`
	Venue         string  `bun:"venue,notnull" json:"venue"`
	MeetingNumber int     `bun:"meeting_number,notnull" json:"meetingNumber"`
	DayNumber     int     `bun:"day_number,notnull" json:"dayNumber"`
	RaceNo        int     `bun:"race_no,notnull" json:"raceNo"`
	RaceName      string  `bun:"race_name,notnull" json:"raceName"`
	ClassName     string  `bun:"class_name,notnull" json:"className"`
	Surface       string  `bun:"surface,notnull" json:"surface"`
	Distance      int     `bun:"distance,notnull" json:"distance"`
	Direction     string  `bun:"direction,notnull" json:"direction"`
	TrackCond     string  `bun:"track_cond,notnull" json:"trackCond"`
	FieldSize     *int    `bun:"field_size" json:"fieldSize,omitempty"`
	Status        string  `bun:"status,notnull,default:'open'" json:"status"`
	Weather       *string `bun:"weather" json:"weather,omitempty"`
}
