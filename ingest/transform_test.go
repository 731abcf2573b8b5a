package ingest

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

var resultHeaders = []string{"日付", "開催", "Ｒ", "馬名", "血統登録番号", "性別", "着順"}

func TestTransformRow(t *testing.T) {
	values := []string{"2025. 8.10", "1東5", "11", "テストホース", "123456", "牡", "----"}

	result, horse, err := TransformRow(FormatJapanese, resultHeaders, values, 0)
	if err != nil {
		t.Fatal(err)
	}

	if result.RaceID != "202505010511" {
		t.Errorf("RaceID = %q, want 202505010511", result.RaceID)
	}
	if result.HorseID != "123456" {
		t.Errorf("HorseID = %q", result.HorseID)
	}
	if result.ID != "202505010511_123456_0" {
		t.Errorf("ID = %q", result.ID)
	}
	if result.Date != "20250810" {
		t.Errorf("Date = %q", result.Date)
	}
	if result.Venue != "東京" {
		t.Errorf("Venue = %q", result.Venue)
	}
	if result.FinishPosition != nil {
		t.Errorf("FinishPosition = %d, want nil for the no-data token", *result.FinishPosition)
	}
	if result.Direction != "left" {
		t.Errorf("Direction = %q, Tokyo is a left-handed track", result.Direction)
	}
	if result.CourseCondition != "good" {
		t.Errorf("CourseCondition = %q, want the good default", result.CourseCondition)
	}
	if result.Odds != 0 {
		t.Errorf("Odds = %v, want 0 when no dividend column exists", result.Odds)
	}

	if horse == nil {
		t.Fatal("expected a horse record, the row names one")
	}
	if horse.ID != "123456" || horse.Name != "テストホース" || horse.Sex != "male" {
		t.Errorf("horse = %+v", horse)
	}
}

func TestTransformRowDeterministic(t *testing.T) {
	values := []string{"2025. 8.10", "1東5", "11", "テストホース", "123456", "牡", "1"}
	a, _, err := TransformRow(FormatJapanese, resultHeaders, values, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := TransformRow(FormatJapanese, resultHeaders, values, 3)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != b.ID || a.RaceID != b.RaceID || a.HorseID != b.HorseID {
		t.Errorf("same row produced different ids: %+v vs %+v", a, b)
	}
}

func TestTransformRowMissingPedigree(t *testing.T) {
	values := []string{"2025. 8.10", "1東5", "11", "テストホース", "", "牡", "1"}
	_, _, err := TransformRow(FormatJapanese, resultHeaders, values, 0)
	if err == nil {
		t.Fatal("expected error for missing pedigree number")
	}
	var merr *MissingFieldError
	if !errors.As(err, &merr) {
		t.Errorf("error %T, want *MissingFieldError", err)
	}
}

func TestTransformRowSurfaceFromDistancePrefix(t *testing.T) {
	headers := append(resultHeaders, "距離")
	tests := []struct {
		distance string
		surface  string
		meters   int
	}{
		{"ダ1200", "dirt", 1200},
		{"芝1600", "turf", 1600},
		{"1800", "dirt", 1800}, // no prefix, no surface column: dirt default
	}
	for _, tt := range tests {
		values := []string{"2025. 8.10", "1東5", "11", "テストホース", "123456", "牡", "1", tt.distance}
		result, _, err := TransformRow(FormatJapanese, headers, values, 0)
		if err != nil {
			t.Fatal(err)
		}
		if result.CourseType != tt.surface || result.Distance != tt.meters {
			t.Errorf("distance %q: (%q, %d), want (%q, %d)",
				tt.distance, result.CourseType, result.Distance, tt.surface, tt.meters)
		}
	}
}

func TestTransformRowCorners(t *testing.T) {
	headers := append(resultHeaders, "1角", "2角", "3角", "4角")
	values := []string{"2025. 8.10", "1東5", "11", "テストホース", "123456", "牡", "1",
		"3", "3", "2", "----"}
	result, _, err := TransformRow(FormatJapanese, headers, values, 0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Pos1c == nil || *result.Pos1c != 3 {
		t.Errorf("Pos1c = %v", result.Pos1c)
	}
	if result.Pos4c != nil {
		t.Errorf("Pos4c = %d, want nil", *result.Pos4c)
	}
	// Mean over the three recorded corners only.
	if want := (3.0 + 3.0 + 2.0) / 3.0; result.AveragePosition != want {
		t.Errorf("AveragePosition = %v, want %v", result.AveragePosition, want)
	}
}

func TestAveragePosition(t *testing.T) {
	three := 3
	if got := averagePosition([]*int{nil, nil, nil, nil}); got != 0 {
		t.Errorf("all-nil corners = %v, want 0", got)
	}
	if got := averagePosition([]*int{&three, nil, &three, nil}); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestExtractRaceDefaults(t *testing.T) {
	headers := []string{"日付", "開催", "Ｒ", "レース名"}
	race := ExtractRace(FormatJapanese, headers, []string{"2025. 8.10", "1東5", "11", "第100回テスト記念"})
	if race == nil {
		t.Fatal("expected a race")
	}
	if race.RaceID != "202505010511" {
		t.Errorf("RaceID = %q", race.RaceID)
	}
	if race.Distance != 1400 {
		t.Errorf("Distance = %d, want the 1400 default", race.Distance)
	}
	if race.TrackCond != "good" || race.Status != "open" {
		t.Errorf("TrackCond = %q, Status = %q", race.TrackCond, race.Status)
	}
	if race.ClassName != "maiden" {
		t.Errorf("ClassName = %q", race.ClassName)
	}
}

func TestExtractRaceNoSignal(t *testing.T) {
	headers := []string{"日付", "開催", "レース名", "馬名"}
	if race := ExtractRace(FormatJapanese, headers, []string{"", "", "", "テストホース"}); race != nil {
		t.Errorf("row without race signal produced %+v", race)
	}
}

func TestExtractEntry(t *testing.T) {
	headers := []string{"日付", "開催", "Ｒ", "馬名", "血統登録番号", "馬番", "人気"}
	entry, err := ExtractEntry(FormatJapanese, headers,
		[]string{"2025. 8.10", "1東5", "11", "テストホース", "123456", "12", "----"})
	if err != nil {
		t.Fatal(err)
	}
	if entry == nil {
		t.Fatal("expected an entry")
	}
	if entry.ID != "202505010511_123456" {
		t.Errorf("ID = %q", entry.ID)
	}
	if entry.HorseNo != 12 {
		t.Errorf("HorseNo = %d", entry.HorseNo)
	}
	if entry.FrameNo != 6 {
		t.Errorf("FrameNo = %d, want 6 for horse 12", entry.FrameNo)
	}
	if entry.Age != 3 || entry.Weight != 54.0 {
		t.Errorf("defaults not applied: age=%d weight=%v", entry.Age, entry.Weight)
	}
	if entry.Popularity != nil {
		t.Errorf("Popularity = %d, want nil for the no-data token", *entry.Popularity)
	}
}

func TestExtractEntrySkipsIncompleteRows(t *testing.T) {
	headers := []string{"日付", "開催", "Ｒ", "馬名", "血統登録番号"}
	// No race number: a history row, not a card row.
	entry, err := ExtractEntry(FormatJapanese,
		[]string{"日付", "開催", "馬名", "血統登録番号"},
		[]string{"2025. 8.10", "1東5", "テストホース", "123456"})
	if err != nil || entry != nil {
		t.Errorf("incomplete row: entry=%v err=%v, want nil, nil", entry, err)
	}
	// No date either.
	entry, err = ExtractEntry(FormatJapanese, headers, []string{"", "1東5", "11", "テストホース", "123456"})
	if err != nil || entry != nil {
		t.Errorf("dateless row: entry=%v err=%v, want nil, nil", entry, err)
	}
}

func TestFrameFromHorseNo(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 1}, {8, 8}, {9, 5}, {12, 6}, {15, 8}, {16, 8},
	}
	for _, tt := range tests {
		if got := frameFromHorseNo(tt.in); got != tt.want {
			t.Errorf("frameFromHorseNo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRaceNumberFromRow(t *testing.T) {
	row := Row{"Ｒ": "１１"}
	if got := raceNumberFromRow(FormatJapanese, row, ""); got != 11 {
		t.Errorf("column value = %d, want 11", got)
	}
	if got := raceNumberFromRow(FormatJapanese, Row{}, "名鉄杯(L)"); got != 7 {
		t.Errorf("named-race fallback = %d, want 7", got)
	}
	if got := raceNumberFromRow(FormatJapanese, Row{}, "無名レース"); got != 0 {
		t.Errorf("no signal = %d, want 0", got)
	}
}

func TestInferClassName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"天皇賞(G1)", "G1"},
		{"毎日王冠ＧⅡ", "G2"},
		{"京成杯G3", "G3"},
		{"オープン特別OP", "OP"},
		{"リステッド(L)", "OP"},
		{"3歳未勝利", "maiden"},
	}
	for _, tt := range tests {
		if got := inferClassName(tt.in); got != tt.want {
			t.Errorf("inferClassName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBirthDate(t *testing.T) {
	if got := birthDate("2020. 4.15", 5); got != "20200415" {
		t.Errorf("explicit date = %q", got)
	}
	want := fmt.Sprintf("%04d0101", time.Now().Year()-3+1)
	if got := birthDate("", 3); got != want {
		t.Errorf("estimated date = %q, want %q", got, want)
	}
	if got := birthDate("", 0); got != "" {
		t.Errorf("no data = %q, want empty", got)
	}
}
