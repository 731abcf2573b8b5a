package ingest

import "testing"

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"１２３", "123"},
		{"２角", "2角"},
		{"123", "123"},
		{"２０２５. ８.１０", "2025. 8.10"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeDigits(tt.in); got != tt.want {
			t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDigitsIdempotent(t *testing.T) {
	in := "１２３-456-７８９"
	once := NormalizeDigits(in)
	if twice := NormalizeDigits(once); twice != once {
		t.Errorf("second application changed result: %q -> %q", once, twice)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2025. 8.10", "20250810"},
		{"2025.08.10", "20250810"},
		{"250810", "20250810"},
		{"20250810", "20250810"},
		{"２０２５. ８.１０", "20250810"},
		{"2025.8", ""},
		{"next tuesday", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeDate(tt.in); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSentinel(t *testing.T) {
	if got := NormalizeSentinel("----"); got != nil {
		t.Errorf("sentinel should map to nil, got %d", *got)
	}
	if got := NormalizeSentinel("0"); got == nil || *got != 0 {
		t.Errorf("literal zero must stay zero, got %v", got)
	}
	if got := NormalizeSentinel("１２"); got == nil || *got != 12 {
		t.Errorf("full-width 12 = %v, want 12", got)
	}
	if got := NormalizeSentinel(""); got != nil {
		t.Errorf("empty should map to nil, got %d", *got)
	}
}

func TestNormalizeOdds(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"350", 3.5},
		{"350円", 3.5},
		{"120", 1.2},
		{"0", 1.0},
		{"", 1.0},
		{"n/a", 1.0},
	}
	for _, tt := range tests {
		if got := NormalizeOdds(tt.in); got != tt.want {
			t.Errorf("NormalizeOdds(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTrackCond(t *testing.T) {
	tests := []struct {
		in   string
		want TrackCond
	}{
		{"良", TrackGood},
		{"稍", TrackYielding},
		{"稍重", TrackYielding},
		{"重", TrackSoft},
		{"不良", TrackHeavy},
		{"unknown", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTrackCond(tt.in); got != tt.want {
			t.Errorf("NormalizeTrackCond(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSex(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"牡", SexMale},
		{"牝", SexFemale},
		{"セ", SexGelding},
		{"騙", SexGelding},
		{"?", SexMale}, // unknown tokens degrade to male, not error
	}
	for _, tt := range tests {
		if got := NormalizeSex(tt.in); got != tt.want {
			t.Errorf("NormalizeSex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripTrainerRegion(t *testing.T) {
	if got := stripTrainerRegion("(栗)藤原英"); got != "藤原英" {
		t.Errorf("got %q", got)
	}
	if got := stripTrainerRegion("(美)国枝栄"); got != "国枝栄" {
		t.Errorf("got %q", got)
	}
	if got := stripTrainerRegion("藤原英"); got != "藤原英" {
		t.Errorf("unprefixed name changed: %q", got)
	}
}

func TestVenueShortToFull(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"札", "札幌"},
		{"東", "東京"},
		{"名", "中京"}, // irregular: 名 means the Chukyo track
		{"中京", "中京"},
		{"帯広", "帯広"}, // unknown passes through
	}
	for _, tt := range tests {
		if got := VenueShortToFull(tt.in); got != tt.want {
			t.Errorf("VenueShortToFull(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
