package ingest

import "testing"

func TestNewRowPadsShortRows(t *testing.T) {
	row := NewRow([]string{"a", "b", "c"}, []string{"1", "2"})
	if row["a"] != "1" || row["b"] != "2" || row["c"] != "" {
		t.Errorf("row = %#v", row)
	}
}

func TestRowFieldPriority(t *testing.T) {
	row := Row{"血統登録番号": "", "血統番号": "123456", "登録番号": "999999"}
	if got := row.Field("血統登録番号", "血統番号", "登録番号"); got != "123456" {
		t.Errorf("Field = %q, want first non-empty candidate", got)
	}
	if got := row.Field("nope", "nada"); got != "" {
		t.Errorf("Field on absent headers = %q, want empty", got)
	}
}

func TestClassifyFormat(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    SourceFormat
	}{
		{"japanese marker", []string{"日付", "馬名"}, FormatJapanese},
		{"any non-ascii header", []string{"Ｒ", "Date"}, FormatJapanese},
		{"all ascii", []string{"Date", "Venue", "HorseName"}, FormatEnglish},
		{"empty", nil, FormatEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFormat(tt.headers); got != tt.want {
				t.Errorf("ClassifyFormat(%v) = %v, want %v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestLookupBothSchemas(t *testing.T) {
	jp := NewRow([]string{"日付", "馬名"}, []string{"20250810", "テストホース"})
	if got := FormatJapanese.lookup(jp, "horseName"); got != "テストホース" {
		t.Errorf("japanese lookup = %q", got)
	}

	en := NewRow([]string{"Date", "HorseName"}, []string{"20250810", "Test Horse"})
	if got := FormatEnglish.lookup(en, "horseName"); got != "Test Horse" {
		t.Errorf("english lookup = %q", got)
	}
}
