package models

import "github.com/uptrace/bun"

// Horse holds a horse's biographical and ownership data. The id is derived
// from the JRA pedigree registration number and is stable across uploads.
type Horse struct {
	bun.BaseModel `bun:"table:horses,alias:h"`

	ID            string  `bun:"id,pk" json:"id"`
	Name          string  `bun:"name,notnull" json:"name"`
	BirthDate     string  `bun:"birth_date,notnull,default:''" json:"birthDate"`
	Sex           string  `bun:"sex,notnull" json:"sex"`
	Color         string  `bun:"color,notnull,default:''" json:"color"`
	Father        string  `bun:"father,notnull,default:''" json:"father"`
	Mother        string  `bun:"mother,notnull,default:''" json:"mother"`
	Trainer       string  `bun:"trainer,notnull,default:''" json:"trainer"`
	Owner         string  `bun:"owner,notnull,default:''" json:"owner"`
	Breeder       string  `bun:"breeder,notnull,default:''" json:"breeder"`
	Earnings      float64 `bun:"earnings,notnull,default:0" json:"earnings"`
	CurrentRaceID *string `bun:"current_race_id" json:"currentRaceId,omitempty"`
}
