package ingest

// Row maps header names to the raw cell values of one CSV line.
type Row map[string]string

// NewRow zips a header row with one data row. Short rows are padded with
// empty strings so lookups never fail.
func NewRow(headers, values []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(values) {
			row[h] = values[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// Field tries each candidate header in priority order and returns the first
// non-empty value, else "". Source files spell the same column several ways
// (full-width vs half-width, 生年月日 vs 生年); ordered candidates are
// simpler and more auditable than fuzzy matching.
func (r Row) Field(candidates ...string) string {
	for _, c := range candidates {
		if v := r[c]; v != "" {
			return v
		}
	}
	return ""
}

// SourceFormat tags which header schema a file uses. It is decided once per
// file; the transformer branches its field tables on it, not its control
// flow.
type SourceFormat int

const (
	FormatJapanese SourceFormat = iota
	FormatEnglish
)

// japaneseMarkers are headers whose presence identifies the Japanese
// spreadsheet schema.
var japaneseMarkers = []string{"日付", "レース名", "開催", "競馬場", "会場", "馬名"}

// ClassifyFormat decides the source schema for a file from its header row.
// Any recognized Japanese header, or any non-ASCII header at all, selects
// the Japanese schema.
func ClassifyFormat(headers []string) SourceFormat {
	for _, h := range headers {
		for _, m := range japaneseMarkers {
			if h == m {
				return FormatJapanese
			}
		}
		for _, r := range h {
			if r > 0x7F {
				return FormatJapanese
			}
		}
	}
	return FormatEnglish
}

// fieldNames maps a logical field to the header spellings that may carry
// it, in priority order.
type fieldNames map[string][]string

var japaneseFields = fieldNames{
	"date":           {"日付", "年月日"},
	"venue":          {"開催", "競馬場", "会場"},
	"raceNumber":     {"Ｒ", "R", "レース"},
	"raceName":       {"レース名"},
	"horseName":      {"馬名"},
	"pedigree":       {"血統登録番号", "血統番号", "登録番号"},
	"sex":            {"性別"},
	"age":            {"年齢"},
	"jockey":         {"騎手"},
	"weight":         {"斤量"},
	"fieldSize":      {"頭数"},
	"horseNo":        {"馬番"},
	"popularity":     {"人気"},
	"finishPosition": {"着順"},
	"surface":        {"芝・ダ", "芝ダ", "コース"},
	"distance":       {"距離"},
	"courseClass":    {"コース区分"},
	"trackCond":      {"馬場状態", "馬場"},
	"earnings":       {"賞金"},
	"affiliation":    {"所属"},
	"trainer":        {"調教師"},
	"time":           {"走破タイム"},
	"margin":         {"着差"},
	"corner1":        {"1角", "１角"},
	"corner2":        {"2角", "２角"},
	"corner3":        {"3角", "３角"},
	"corner4":        {"4角", "４角"},
	"cornerAgg":      {"ｺｰﾅｰ", "コーナー", "通過"},
	"last3F":         {"上り3F"},
	"ave3F":          {"Ave-3F", "AVE-3F", "平均3F"},
	"winDividend":    {"単勝配当"},
	"color":          {"毛色"},
	"birthDate":      {"生年月日", "生年"},
	"father":         {"種牡馬", "父", "父馬"},
	"mother":         {"母馬", "母"},
	"owner":          {"馬主(レース時)", "馬主", "オーナー"},
	"breeder":        {"生産者", "ブリーダー"},
	"bodyWeight":     {"馬体重"},
	"bodyWeightDiff": {"馬体重増減"},
	"blinkers":       {"ブリンカー"},
}

var englishFields = fieldNames{
	"date":           {"Date", "date"},
	"venue":          {"Venue", "venue"},
	"raceNumber":     {"RaceNo", "R"},
	"raceName":       {"RaceName", "Race", "raceName"},
	"horseName":      {"HorseName", "horseName"},
	"pedigree":       {"PedigreeNumber", "RegistrationNumber", "pedigreeNumber"},
	"sex":            {"Sex", "sex"},
	"age":            {"Age", "age"},
	"jockey":         {"Jockey", "jockey"},
	"weight":         {"Weight", "weight"},
	"fieldSize":      {"FieldSize", "Field"},
	"horseNo":        {"HorseNo"},
	"popularity":     {"Popularity", "popularity"},
	"finishPosition": {"FinishPosition", "finishPosition"},
	"surface":        {"Surface", "CourseType", "courseType"},
	"distance":       {"Distance", "distance"},
	"courseClass":    {"CourseClassification"},
	"trackCond":      {"TrackCondition", "Condition", "courseCondition"},
	"earnings":       {"Earnings", "earnings"},
	"affiliation":    {"Affiliation"},
	"trainer":        {"Trainer", "trainer"},
	"time":           {"Time", "time"},
	"margin":         {"Margin", "margin"},
	"corner1":        {"Corner1"},
	"corner2":        {"Corner2"},
	"corner3":        {"Corner3"},
	"corner4":        {"Corner4"},
	"cornerAgg":      {"CornerPassings"},
	"last3F":         {"LastThreeFurlong", "lastThreeFurlong"},
	"ave3F":          {"AveThreeFurlong"},
	"winDividend":    {"WinDividend", "odds"},
	"color":          {"Color", "color"},
	"birthDate":      {"BirthDate", "birthDate"},
	"father":         {"Father", "Sire"},
	"mother":         {"Mother", "Dam"},
	"owner":          {"Owner", "owner"},
	"breeder":        {"Breeder", "breeder"},
	"bodyWeight":     {"BodyWeight"},
	"bodyWeightDiff": {"BodyWeightDiff"},
	"blinkers":       {"Blinkers"},
}

func (f SourceFormat) fields() fieldNames {
	if f == FormatEnglish {
		return englishFields
	}
	return japaneseFields
}

// lookup resolves a logical field against a row using the format's synonym
// table.
func (f SourceFormat) lookup(row Row, field string) string {
	return row.Field(f.fields()[field]...)
}
