package harvest

import (
	"reflect"
	"testing"

	"kanjigen/pkg/kanji"
)

func TestEntry_RecordFlattening(t *testing.T) {
	e := Entry{
		Kanji:    "腕",
		Meaning:  "arm, ability, talent",
		Readings: []string{"ワン", "うで"},
		Compounds: []kanji.Compound{
			{Word: "右腕", Reading: "うわん", Gloss: "right arm"},
			{Word: "手腕", Reading: "しゅわん", Gloss: "ability"},
		},
	}

	rec := e.Record()

	if rec.Readings != "ワン; うで" {
		t.Errorf("readings: got %q", rec.Readings)
	}
	if rec.Compounds != "右腕 (うわん) = right arm; 手腕 (しゅわん) = ability" {
		t.Errorf("compounds: got %q", rec.Compounds)
	}
}

// The flattened wire shape must parse back into the same structure: the
// harvester and the renderer agree on the CSV dialect through this.
func TestEntry_RecordRoundTripsThroughParse(t *testing.T) {
	e := Entry{
		Kanji:    "腕",
		Meaning:  "arm",
		Readings: []string{"ワン", "うで"},
		Compounds: []kanji.Compound{
			{Word: "右腕", Reading: "うわん", Gloss: "right arm"},
		},
	}

	parsed := kanji.Parse(e.Record())

	if parsed.Character != e.Kanji || parsed.Meaning != e.Meaning {
		t.Errorf("header fields: %+v", parsed)
	}
	if !reflect.DeepEqual(parsed.OnReadings, []string{"ワン"}) ||
		!reflect.DeepEqual(parsed.KunReadings, []string{"うで"}) {
		t.Errorf("readings: on=%v kun=%v", parsed.OnReadings, parsed.KunReadings)
	}
	if !reflect.DeepEqual(parsed.Compounds, e.Compounds) {
		t.Errorf("compounds: got %v", parsed.Compounds)
	}
}

func TestConfig_PageURL(t *testing.T) {
	if got := (Config{Level: 3}).PageURL(); got != "https://www.jlptstudy.net/N3/?kanji-list" {
		t.Errorf("got %q", got)
	}
	if got := (Config{Level: 3, URL: "http://localhost:1234/"}).PageURL(); got != "http://localhost:1234/" {
		t.Errorf("override: got %q", got)
	}
}

func TestConfig_OutputFile(t *testing.T) {
	if got := (Config{Level: 4}).OutputFile(); got != "kanji_n4.csv" {
		t.Errorf("got %q", got)
	}
}
