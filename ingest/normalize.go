package ingest

import (
	"strconv"
	"strings"
)

// noDataToken is the literal the source format writes for "not applicable /
// race not yet run". It maps to nil downstream, never to 0 or "".
const noDataToken = "----"

// TrackCond is the going, normalized from the 良/稍/重/不良 scale.
type TrackCond string

const (
	TrackGood     TrackCond = "good"
	TrackYielding TrackCond = "yielding"
	TrackSoft     TrackCond = "soft"
	TrackHeavy    TrackCond = "heavy"
)

var trackCondTable = map[string]TrackCond{
	"良":  TrackGood,
	"稍":  TrackYielding,
	"稍重": TrackYielding,
	"重":  TrackSoft,
	"不良": TrackHeavy,
}

// Sex values for horse records.
const (
	SexMale    = "male"
	SexFemale  = "female"
	SexGelding = "gelding"
)

// sexTable includes 騙, the historical spelling for a gelding.
var sexTable = map[string]string{
	"牡": SexMale,
	"牝": SexFemale,
	"セ": SexGelding,
	"騙": SexGelding,
}

// NormalizeDigits maps full-width digits (U+FF10–U+FF19) to their ASCII
// equivalents. Other characters are left untouched.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return r - 0xFEE0
		}
		return r
	}, s)
}

// normalizeWidth folds full-width digits and latin letters to ASCII.
// Registration numbers occasionally arrive fully double-width.
func normalizeWidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '０' && r <= '９', r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ':
			return r - 0xFEE0
		}
		return r
	}, s)
}

// NormalizeDate converts the three date shapes seen in exports — dotted
// ("2025. 8.10"), 6-digit ("250810"), 8-digit ("20250810") — to canonical
// YYYYMMDD. Unrecognized shapes yield "".
func NormalizeDate(raw string) string {
	s := NormalizeDigits(raw)
	if strings.Contains(s, ".") {
		parts := strings.Split(strings.ReplaceAll(s, " ", ""), ".")
		if len(parts) < 3 {
			return ""
		}
		year := padLeft(parts[0], 4)
		month := padLeft(parts[1], 2)
		day := padLeft(parts[2], 2)
		return year + month + day
	}
	switch {
	case len(s) == 6 && allDigits(s):
		return "20" + s
	case len(s) == 8 && allDigits(s):
		return s
	}
	return ""
}

// NormalizeSentinel maps the 4-dash no-data token to nil; everything else
// is parsed as an integer. "0" stays 0 — the distinction between "no data"
// and a literal zero matters for finish positions.
func NormalizeSentinel(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" || s == noDataToken {
		return nil
	}
	n, err := strconv.Atoi(NormalizeDigits(s))
	if err != nil {
		return nil
	}
	return &n
}

// NormalizeOdds converts a win dividend (per 100 yen) into decimal odds.
// Invalid or zero input yields 1.0, a neutral default that keeps
// odds-derived calculations free of division by zero.
func NormalizeOdds(raw string) float64 {
	cleaned := keepDigitsAndDot(NormalizeDigits(raw))
	dividend, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || dividend == 0 {
		return 1.0
	}
	return dividend / 100
}

// NormalizeTrackCond maps the going scale to its canonical form; unknown
// tokens yield "".
func NormalizeTrackCond(raw string) TrackCond {
	return trackCondTable[strings.TrimSpace(raw)]
}

// NormalizeSex maps a sex token to its canonical form, defaulting to male
// for unknown tokens. The default is a deliberate degrade-gracefully
// choice, not an error.
func NormalizeSex(raw string) string {
	if s, ok := sexTable[strings.TrimSpace(raw)]; ok {
		return s
	}
	return SexMale
}

// stripTrainerRegion removes the (栗)/(美) training-center prefix carried by
// trainer columns.
func stripTrainerRegion(trainer string) string {
	for _, prefix := range []string{"(栗)", "(美)", "（栗）", "（美）"} {
		if strings.HasPrefix(trainer, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trainer, prefix))
		}
	}
	return trainer
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepDigitsAndDot(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(NormalizeDigits(strings.TrimSpace(s)))
	if err != nil {
		return def
	}
	return n
}

func parseFloatDefault(s string, def float64) float64 {
	f, err := strconv.ParseFloat(keepDigitsAndDot(NormalizeDigits(s)), 64)
	if err != nil {
		return def
	}
	return f
}
