package ingest

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestDecodeCSVShiftJIS(t *testing.T) {
	utf8Text := "馬名,日付\nテストホース,20250810\n"
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(utf8Text))
	if err != nil {
		t.Fatal(err)
	}
	if got := DecodeCSV(sjis); got != utf8Text {
		t.Errorf("Shift_JIS input not decoded: %q", got)
	}
}

func TestDecodeCSVASCIIPassthrough(t *testing.T) {
	raw := []byte("name,date\nTest Horse,20250810\n")
	if got := DecodeCSV(raw); !bytes.Equal([]byte(got), raw) {
		t.Errorf("ASCII input changed: %q", got)
	}
}

func TestLooksGarbled(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"テストホース", false},
		{"馬名", false},
		{"name,date", true}, // no Japanese script at all
		{"��", true},
	}
	for _, tt := range tests {
		if got := looksGarbled(tt.in); got != tt.want {
			t.Errorf("looksGarbled(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
