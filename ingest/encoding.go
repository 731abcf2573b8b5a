package ingest

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// DecodeCSV decodes raw upload bytes to text. Japanese racing exports are
// usually Shift_JIS, so that is tried first; if the result looks garbled
// the bytes are treated as UTF-8 instead.
func DecodeCSV(raw []byte) string {
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
	if err == nil && !looksGarbled(string(decoded)) {
		return string(decoded)
	}
	return string(raw)
}

// looksGarbled is the mojibake heuristic: a Japanese export decoded with
// the wrong charset loses its Japanese script entirely or sprouts
// replacement runes.
func looksGarbled(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	japaneseRunes := 0
	for _, r := range s {
		if r == utf8.RuneError {
			return true
		}
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			japaneseRunes++
		}
	}
	return japaneseRunes == 0
}
