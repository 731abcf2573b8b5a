package ingest

import (
	"errors"
	"testing"
)

func TestGenerateRaceID(t *testing.T) {
	tests := []struct {
		year                  int
		venue                 string
		meeting, day, raceNum int
		want                  string
	}{
		{2025, "東京", 1, 5, 11, "202505010511"},
		{2025, "中京", 3, 4, 7, "202507030407"},
		{2024, "札幌", 1, 1, 1, "202401010101"},
		{2025, "帯広", 1, 1, 1, "202599010101"}, // unknown venue gets sentinel code
	}
	for _, tt := range tests {
		got := GenerateRaceID(tt.year, tt.venue, tt.meeting, tt.day, tt.raceNum)
		if got != tt.want {
			t.Errorf("GenerateRaceID(%d, %q, %d, %d, %d) = %q, want %q",
				tt.year, tt.venue, tt.meeting, tt.day, tt.raceNum, got, tt.want)
		}
		if len(got) != 12 {
			t.Errorf("race id %q has length %d, want 12", got, len(got))
		}
		// Deterministic: same inputs, same id.
		if again := GenerateRaceID(tt.year, tt.venue, tt.meeting, tt.day, tt.raceNum); again != got {
			t.Errorf("second call differed: %q vs %q", again, got)
		}
	}
}

func TestGenerateHorseID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"123456", "123456"},
		{"１２３４５６", "123456"},
		{" 123-456 ", "123456"},
		{"No.２０２２１０４５６７", "2022104567"},
	}
	for _, tt := range tests {
		got, err := GenerateHorseID(tt.in)
		if err != nil {
			t.Fatalf("GenerateHorseID(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("GenerateHorseID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateHorseIDStable(t *testing.T) {
	first, err := GenerateHorseID("１２３４５６")
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateHorseID(first)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("feeding the id back changed it: %q -> %q", first, second)
	}
}

func TestGenerateHorseIDNoDigits(t *testing.T) {
	for _, in := range []string{"", "   ", "不明", "abc"} {
		_, err := GenerateHorseID(in)
		if err == nil {
			t.Fatalf("GenerateHorseID(%q): expected error", in)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("GenerateHorseID(%q): error %T, want *ValidationError", in, err)
		}
	}
}

func TestParseRaceID(t *testing.T) {
	p, err := ParseRaceID("202505010511")
	if err != nil {
		t.Fatal(err)
	}
	if p.Year != 2025 || p.VenueName != "東京" || p.MeetingNumber != 1 || p.DayNumber != 5 || p.RaceNumber != 11 {
		t.Errorf("unexpected parts: %+v", p)
	}

	// Legacy 11-char form: 1-digit meeting number.
	p, err = ParseRaceID("20250510511")
	if err != nil {
		t.Fatal(err)
	}
	if p.MeetingNumber != 1 || p.DayNumber != 5 || p.RaceNumber != 11 {
		t.Errorf("legacy parts: %+v", p)
	}

	for _, bad := range []string{"", "2025", "20250501051X", "202577010511"} {
		if _, err := ParseRaceID(bad); err == nil {
			t.Errorf("ParseRaceID(%q): expected error", bad)
		}
	}
}

func TestCanonicalRaceID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"20250510511", "202505010511"},  // legacy upgraded
		{"202505010511", "202505010511"}, // canonical untouched
		{"bogus", "bogus"},               // unparseable passes through
	}
	for _, tt := range tests {
		if got := CanonicalRaceID(tt.in); got != tt.want {
			t.Errorf("CanonicalRaceID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRaceID(t *testing.T) {
	if got := FormatRaceID("202505010511"); got != "2025年 1回東京5日目 11R" {
		t.Errorf("FormatRaceID = %q", got)
	}
	if got := FormatRaceID("nonsense"); got != "nonsense" {
		t.Errorf("unparseable id should pass through, got %q", got)
	}
}

func TestParseMeeting(t *testing.T) {
	tests := []struct {
		in      string
		meeting int
		venue   string
		day     int
	}{
		{"1東5", 1, "東京", 5},
		{"3名4", 3, "中京", 4},
		{"１札６", 1, "札幌", 6},
		{"中京", 1, "中京", 1},
		{"東", 1, "東京", 1},
		{"", 1, "未指定", 1},
	}
	for _, tt := range tests {
		meeting, venue, day := ParseMeeting(tt.in)
		if meeting != tt.meeting || venue != tt.venue || day != tt.day {
			t.Errorf("ParseMeeting(%q) = (%d, %q, %d), want (%d, %q, %d)",
				tt.in, meeting, venue, day, tt.meeting, tt.venue, tt.day)
		}
	}
}
