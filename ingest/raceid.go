package ingest

import (
	"fmt"
	"regexp"
	"strconv"
)

// GenerateRaceID derives the canonical 12-character race identifier:
// year(4) + venue code(2) + meeting(2) + day(2) + race number(2).
// Unknown venues get the "99" sentinel code instead of failing — a
// malformed venue must not abort a batch.
func GenerateRaceID(year int, venueName string, meetingNumber, dayNumber, raceNumber int) string {
	return fmt.Sprintf("%04d%s%02d%02d%02d", year, VenueCode(venueName), meetingNumber, dayNumber, raceNumber)
}

// GenerateHorseID derives the horse identifier from the pedigree
// registration number: full-width folded, digits only. A number with no
// parseable digits cannot identify a horse, so the row must be rejected
// rather than defaulted.
func GenerateHorseID(pedigreeNumber string) (string, error) {
	id := digitsOnly(normalizeWidth(pedigreeNumber))
	if id == "" {
		return "", &ValidationError{Field: "pedigree registration number", Reason: "no digits found"}
	}
	return id, nil
}

// RaceIDParts is the decomposition of a race identifier.
type RaceIDParts struct {
	Year          int
	VenueCode     string
	VenueName     string
	MeetingNumber int
	DayNumber     int
	RaceNumber    int
}

// ParseRaceID decomposes a race identifier. The canonical width is 12
// characters; the legacy 11-character form (1-digit meeting number) is
// still accepted so pre-migration data remains readable.
func ParseRaceID(id string) (RaceIDParts, error) {
	var meetingWidth int
	switch len(id) {
	case 12:
		meetingWidth = 2
	case 11:
		meetingWidth = 1
	default:
		return RaceIDParts{}, &ValidationError{Field: "race id", Reason: fmt.Sprintf("unexpected length %d", len(id))}
	}
	if !allDigits(id) {
		return RaceIDParts{}, &ValidationError{Field: "race id", Reason: "non-digit characters"}
	}

	p := RaceIDParts{VenueCode: id[4:6]}
	p.Year, _ = strconv.Atoi(id[:4])
	p.MeetingNumber, _ = strconv.Atoi(id[6 : 6+meetingWidth])
	p.DayNumber, _ = strconv.Atoi(id[6+meetingWidth : 8+meetingWidth])
	p.RaceNumber, _ = strconv.Atoi(id[8+meetingWidth:])

	p.VenueName = VenueNameByCode(p.VenueCode)
	if p.VenueName == "" && p.VenueCode != UnknownVenueCode {
		return RaceIDParts{}, &ValidationError{Field: "race id", Reason: "unknown venue code " + p.VenueCode}
	}
	return p, nil
}

// CanonicalRaceID upgrades a legacy 11-character identifier to the
// 12-character width. Canonical and unparseable identifiers pass through
// unchanged.
func CanonicalRaceID(id string) string {
	if len(id) != 11 {
		return id
	}
	p, err := ParseRaceID(id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%04d%s%02d%02d%02d", p.Year, p.VenueCode, p.MeetingNumber, p.DayNumber, p.RaceNumber)
}

// FormatRaceID renders an identifier for display, e.g.
// "2025年 1回東京5日目 11R". Unparseable identifiers are returned as-is.
func FormatRaceID(id string) string {
	p, err := ParseRaceID(id)
	if err != nil {
		return id
	}
	venue := p.VenueName
	if venue == "" {
		venue = "不明"
	}
	return fmt.Sprintf("%d年 %d回%s%d日目 %dR", p.Year, p.MeetingNumber, venue, p.DayNumber, p.RaceNumber)
}

// meetingPattern matches composite venue cells like "1東5" or "3名4":
// meeting number, venue, day number.
var meetingPattern = regexp.MustCompile(`^([0-9]+)([^0-9]+)([0-9]+)$`)

// ParseMeeting splits a venue cell into meeting number, canonical venue
// name and day number. Bare venue names ("中京") are accepted with meeting
// and day defaulting to 1. An empty cell resolves to UnknownVenueName so
// that race and result records derived from the same row always carry the
// same race identifier.
func ParseMeeting(venue string) (meetingNumber int, venueName string, dayNumber int) {
	s := NormalizeDigits(venue)
	if s == "" {
		return 1, UnknownVenueName, 1
	}
	m := meetingPattern.FindStringSubmatch(s)
	if m == nil {
		return 1, VenueShortToFull(s), 1
	}
	meetingNumber, _ = strconv.Atoi(m[1])
	dayNumber, _ = strconv.Atoi(m[3])
	return meetingNumber, VenueShortToFull(m[2]), dayNumber
}
