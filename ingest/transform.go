package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/iheushiram/umarote/models"
)

var surfaceTable = map[string]Surface{
	"芝":   SurfaceTurf,
	"ダート": SurfaceDirt,
	"ダ":   SurfaceDirt,
}

// namedRaceNumbers maps race names to their customary race number, used
// when an export omits the race-number column entirely.
var namedRaceNumbers = map[string]int{
	"名鉄杯": 7,
}

// TransformRow converts one raw CSV row into a race result record plus,
// when the row carries enough biography, a horse record. Any error is
// row-scoped; the reconciler records it and continues with the batch.
func TransformRow(format SourceFormat, headers, values []string, rowIndex int) (*models.RaceResult, *models.Horse, error) {
	row := NewRow(headers, values)

	horseName := strings.TrimSpace(format.lookup(row, "horseName"))
	raceName := strings.TrimSpace(format.lookup(row, "raceName"))
	date := NormalizeDate(format.lookup(row, "date"))

	pedigree := strings.TrimSpace(format.lookup(row, "pedigree"))
	if pedigree == "" {
		return nil, nil, &MissingFieldError{Field: "pedigree registration number"}
	}
	horseID, err := GenerateHorseID(pedigree)
	if err != nil {
		return nil, nil, err
	}

	raceNo := raceNumberFromRow(format, row, raceName)
	meetingNum, venueName, dayNum := ParseMeeting(format.lookup(row, "venue"))
	raceID := GenerateRaceID(yearFromDate(date), venueName, meetingNum, dayNum, raceNo)
	resultID := fmt.Sprintf("%s_%s_%d", raceID, horseID, rowIndex)

	distanceField := format.lookup(row, "distance")
	distance := parseIntDefault(digitsOnly(NormalizeDigits(distanceField)), 0)

	corners := [4]*int{
		NormalizeSentinel(format.lookup(row, "corner1")),
		NormalizeSentinel(format.lookup(row, "corner2")),
		NormalizeSentinel(format.lookup(row, "corner3")),
		NormalizeSentinel(format.lookup(row, "corner4")),
	}

	cond := NormalizeTrackCond(stripSpaces(format.lookup(row, "trackCond")))
	if cond == "" {
		cond = TrackGood
	}

	odds := 0.0
	if dividend := format.lookup(row, "winDividend"); dividend != "" {
		odds = NormalizeOdds(dividend)
	}

	result := &models.RaceResult{
		ID:               resultID,
		RaceID:           raceID,
		HorseID:          horseID,
		Date:             date,
		RaceName:         raceName,
		Venue:            venueName,
		CourseType:       string(surfaceFromRow(format, row, distanceField)),
		Distance:         distance,
		Direction:        string(InferDirection(format.lookup(row, "courseClass"), venueName, distance)),
		CourseCondition:  string(cond),
		FinishPosition:   NormalizeSentinel(format.lookup(row, "finishPosition")),
		Jockey:           strings.TrimSpace(format.lookup(row, "jockey")),
		Weight:           parseFloatDefault(format.lookup(row, "weight"), 0),
		Time:             dropSentinel(format.lookup(row, "time")),
		Margin:           dropSentinel(format.lookup(row, "margin")),
		Pos1c:            corners[0],
		Pos2c:            corners[1],
		Pos3c:            corners[2],
		Pos4c:            corners[3],
		CornerPassings:   optionalString(stripSpaces(format.lookup(row, "cornerAgg"))),
		AveragePosition:  averagePosition(corners[:]),
		LastThreeFurlong: format.lookup(row, "last3F"),
		Odds:             odds,
		Popularity:       parseIntDefault(format.lookup(row, "popularity"), 0),
	}
	result.AverageThreeFurlong = optionalString(stripSpaces(format.lookup(row, "ave3F")))

	var horse *models.Horse
	if horseName != "" {
		age := parseIntDefault(format.lookup(row, "age"), 0)
		horse = &models.Horse{
			ID:        horseID,
			Name:      horseName,
			BirthDate: birthDate(format.lookup(row, "birthDate"), age),
			Sex:       NormalizeSex(format.lookup(row, "sex")),
			Color:     strings.TrimSpace(format.lookup(row, "color")),
			Father:    strings.TrimSpace(format.lookup(row, "father")),
			Mother:    strings.TrimSpace(format.lookup(row, "mother")),
			Trainer:   stripTrainerRegion(strings.TrimSpace(format.lookup(row, "trainer"))),
			Owner:     strings.TrimSpace(format.lookup(row, "owner")),
			Breeder:   strings.TrimSpace(format.lookup(row, "breeder")),
			Earnings:  parseFloatDefault(format.lookup(row, "earnings"), 0),
		}
	}

	return result, horse, nil
}

// ExtractRace builds the race record described by a row, or nil when the
// row carries no race signal at all.
func ExtractRace(format SourceFormat, headers, values []string) *models.Race {
	row := NewRow(headers, values)

	rawDate := format.lookup(row, "date")
	rawVenue := format.lookup(row, "venue")
	raceName := strings.TrimSpace(format.lookup(row, "raceName"))
	if rawDate == "" && rawVenue == "" && raceName == "" {
		return nil
	}

	date := NormalizeDate(rawDate)
	if date == "" {
		date = time.Now().Format("20060102")
	}
	if raceName == "" {
		raceName = "不明なレース"
	}

	meetingNum, venueName, dayNum := ParseMeeting(rawVenue)
	raceNo := raceNumberFromRow(format, row, raceName)

	distanceField := format.lookup(row, "distance")
	distance := parseIntDefault(digitsOnly(NormalizeDigits(distanceField)), 1400)

	cond := NormalizeTrackCond(stripSpaces(format.lookup(row, "trackCond")))
	if cond == "" {
		cond = TrackGood
	}

	race := &models.Race{
		RaceID:        GenerateRaceID(yearFromDate(date), venueName, meetingNum, dayNum, raceNo),
		Date:          date,
		Venue:         venueName,
		MeetingNumber: meetingNum,
		DayNumber:     dayNum,
		RaceNo:        raceNo,
		RaceName:      raceName,
		ClassName:     inferClassName(raceName),
		Surface:       string(surfaceFromRow(format, row, distanceField)),
		Distance:      distance,
		Direction:     string(InferDirection(format.lookup(row, "courseClass"), venueName, distance)),
		TrackCond:     string(cond),
		Status:        "open",
	}
	if fs := parseIntDefault(digitsOnly(format.lookup(row, "fieldSize")), 0); fs > 0 {
		race.FieldSize = &fs
	}
	return race
}

// ExtractEntry builds a race-card entry from a row. Rows missing any of
// the required fields are skipped (nil, nil), not errors: result exports
// routinely mix card rows with history rows.
func ExtractEntry(format SourceFormat, headers, values []string) (*models.RaceEntry, error) {
	row := NewRow(headers, values)

	rawDate := format.lookup(row, "date")
	rawVenue := format.lookup(row, "venue")
	raceNumber := format.lookup(row, "raceNumber")
	horseName := format.lookup(row, "horseName")
	pedigree := format.lookup(row, "pedigree")

	date := NormalizeDate(rawDate)
	if date == "" || rawVenue == "" || raceNumber == "" || horseName == "" || pedigree == "" {
		return nil, nil
	}

	horseID, err := GenerateHorseID(pedigree)
	if err != nil {
		return nil, err
	}

	meetingNum, venueName, dayNum := ParseMeeting(rawVenue)
	raceID := GenerateRaceID(yearFromDate(date), venueName, meetingNum, dayNum, parseIntDefault(NormalizeDigits(raceNumber), 0))

	horseNo := parseIntDefault(format.lookup(row, "horseNo"), 1)
	entry := &models.RaceEntry{
		ID:          fmt.Sprintf("%s_%s", raceID, horseID),
		RaceID:      raceID,
		HorseID:     horseID,
		Date:        date,
		FrameNo:     frameFromHorseNo(horseNo),
		HorseNo:     horseNo,
		Age:         parseIntDefault(format.lookup(row, "age"), 3),
		Jockey:      strings.TrimSpace(format.lookup(row, "jockey")),
		Weight:      parseFloatDefault(format.lookup(row, "weight"), 54.0),
		Trainer:     strings.TrimSpace(format.lookup(row, "trainer")),
		Affiliation: strings.TrimSpace(format.lookup(row, "affiliation")),
		Blinkers:    strings.TrimSpace(format.lookup(row, "blinkers")) != "",
	}
	entry.Popularity = NormalizeSentinel(format.lookup(row, "popularity"))
	entry.BodyWeight = NormalizeSentinel(format.lookup(row, "bodyWeight"))
	entry.BodyWeightDiff = NormalizeSentinel(format.lookup(row, "bodyWeightDiff"))
	return entry, nil
}

// frameFromHorseNo approximates the frame number when the export omits it:
// horses 1-8 map one to one, beyond that pairs share a frame. This is a
// fallback, not authoritative data.
func frameFromHorseNo(horseNo int) int {
	if horseNo <= 8 {
		return horseNo
	}
	return (horseNo + 1) / 2
}

// raceNumberFromRow reads the race number column, falling back to the
// named-race table when the column is absent.
func raceNumberFromRow(format SourceFormat, row Row, raceName string) int {
	if n := NormalizeDigits(format.lookup(row, "raceNumber")); n != "" {
		return parseIntDefault(n, 0)
	}
	for name, no := range namedRaceNumbers {
		if strings.Contains(raceName, name) {
			return no
		}
	}
	return 0
}

// surfaceFromRow prefers the leading glyph of the distance field (some
// exports write ダ1200 / 芝1600), then the dedicated surface column.
func surfaceFromRow(format SourceFormat, row Row, distanceField string) Surface {
	switch {
	case strings.HasPrefix(distanceField, "ダ"):
		return SurfaceDirt
	case strings.HasPrefix(distanceField, "芝"):
		return SurfaceTurf
	}
	if s, ok := surfaceTable[stripSpaces(format.lookup(row, "surface"))]; ok {
		return s
	}
	return SurfaceDirt
}

// averagePosition is the mean of the corner positions actually recorded,
// or 0 when none are.
func averagePosition(corners []*int) float64 {
	sum, n := 0, 0
	for _, c := range corners {
		if c != nil && *c > 0 {
			sum += *c
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// birthDate prefers the explicit birth-date column; otherwise it estimates
// January 1st of (current year - age + 1). The estimate is deliberate and
// visible to callers: exact birth dates require the explicit field.
func birthDate(explicit string, age int) string {
	if explicit != "" {
		if d := NormalizeDate(explicit); d != "" {
			return d
		}
	}
	if age > 0 {
		return fmt.Sprintf("%04d0101", time.Now().Year()-age+1)
	}
	return ""
}

func inferClassName(raceName string) string {
	switch {
	case strings.Contains(raceName, "G1") || strings.Contains(raceName, "Ⅰ"):
		return "G1"
	case strings.Contains(raceName, "G2") || strings.Contains(raceName, "Ⅱ"):
		return "G2"
	case strings.Contains(raceName, "G3") || strings.Contains(raceName, "Ⅲ"):
		return "G3"
	case strings.Contains(raceName, "OP") || strings.Contains(raceName, "(L)"):
		return "OP"
	}
	return "maiden"
}

func yearFromDate(date string) int {
	if len(date) == 8 && allDigits(date) {
		return parseIntDefault(date[:4], time.Now().Year())
	}
	return time.Now().Year()
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dropSentinel(s string) string {
	if s == noDataToken {
		return ""
	}
	return s
}
