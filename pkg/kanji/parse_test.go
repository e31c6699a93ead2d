package kanji

import (
	"reflect"
	"testing"

	"kanjigen/pkg/dataset"
)

func TestParse_FullEntry(t *testing.T) {
	rec := dataset.Record{
		Kanji:     "腕",
		Meaning:   "arm, ability, talent",
		Readings:  "ワン; うで",
		Compounds: "右腕 (うわん) = right arm; 手腕 (しゅわん) = ability",
	}

	e := Parse(rec)

	if e.Character != "腕" {
		t.Errorf("character: got %q", e.Character)
	}
	if e.Meaning != "arm, ability, talent" {
		t.Errorf("meaning: got %q", e.Meaning)
	}
	if !reflect.DeepEqual(e.OnReadings, []string{"ワン"}) {
		t.Errorf("on readings: got %v", e.OnReadings)
	}
	if !reflect.DeepEqual(e.KunReadings, []string{"うで"}) {
		t.Errorf("kun readings: got %v", e.KunReadings)
	}
	want := []Compound{
		{Word: "右腕", Reading: "うわん", Gloss: "right arm"},
		{Word: "手腕", Reading: "しゅわん", Gloss: "ability"},
	}
	if !reflect.DeepEqual(e.Compounds, want) {
		t.Errorf("compounds: got %v, want %v", e.Compounds, want)
	}
}

func TestParseReadings_PureKatakanaRoundTrip(t *testing.T) {
	on, kun := parseReadings("ワン; カン, ケン")

	if !reflect.DeepEqual(on, []string{"ワン", "カン", "ケン"}) {
		t.Errorf("on readings: got %v", on)
	}
	if len(kun) != 0 {
		t.Errorf("kun readings: expected none, got %v", kun)
	}
}

func TestParseReadings_PureHiragana(t *testing.T) {
	on, kun := parseReadings("うで; かいな")

	if len(on) != 0 {
		t.Errorf("on readings: expected none, got %v", on)
	}
	if !reflect.DeepEqual(kun, []string{"うで", "かいな"}) {
		t.Errorf("kun readings: got %v", kun)
	}
}

func TestParseReadings_MixedTokenSplitsIntoBothFamilies(t *testing.T) {
	on, kun := parseReadings("ワンうで")

	if !reflect.DeepEqual(on, []string{"ワン"}) {
		t.Errorf("on readings: got %v", on)
	}
	if !reflect.DeepEqual(kun, []string{"うで"}) {
		t.Errorf("kun readings: got %v", kun)
	}
}

func TestParseReadings_WhitelistPunctuationStaysWithToken(t *testing.T) {
	on, kun := parseReadings("かど・つの")

	if len(on) != 0 {
		t.Errorf("on readings: expected none, got %v", on)
	}
	if !reflect.DeepEqual(kun, []string{"かど・つの"}) {
		t.Errorf("kun readings: got %v", kun)
	}
}

func TestParseReadings_LatinTokenContributesNothing(t *testing.T) {
	on, kun := parseReadings("abc; x・y")

	if len(on) != 0 || len(kun) != 0 {
		t.Errorf("expected no readings, got on=%v kun=%v", on, kun)
	}
}

func TestParseReadings_EmptySegmentsDropped(t *testing.T) {
	on, kun := parseReadings(" ; , ;ワン, ")

	if !reflect.DeepEqual(on, []string{"ワン"}) {
		t.Errorf("on readings: got %v", on)
	}
	if len(kun) != 0 {
		t.Errorf("kun readings: got %v", kun)
	}
}

func TestParseCompounds_PreservesCountAndOrder(t *testing.T) {
	got := parseCompounds("一 (a) = one; 二 (b) = two; 三 (c) = three")

	want := []Compound{
		{Word: "一", Reading: "a", Gloss: "one"},
		{Word: "二", Reading: "b", Gloss: "two"},
		{Word: "三", Reading: "c", Gloss: "three"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCompounds_MalformedFragmentSilentlyDropped(t *testing.T) {
	got := parseCompounds("一 (a) = one; broken fragment; 三 (c) = three")

	if len(got) != 2 {
		t.Fatalf("expected 2 compounds, got %d: %v", len(got), got)
	}
	if got[0].Word != "一" || got[1].Word != "三" {
		t.Errorf("wrong survivors: %v", got)
	}
}

func TestParseCompounds_OptionalSpaceBeforeParen(t *testing.T) {
	got := parseCompounds("右腕(うわん) = right arm")

	if len(got) != 1 || got[0].Reading != "うわん" {
		t.Errorf("got %v", got)
	}
}

func TestParse_NeverFailsOnGarbage(t *testing.T) {
	e := Parse(dataset.Record{
		Kanji:     " 腕 ",
		Meaning:   "",
		Readings:  "((;;,,))",
		Compounds: "= ( ) ;;; (((",
	})

	if e.Character != "腕" {
		t.Errorf("character not trimmed: %q", e.Character)
	}
	if len(e.OnReadings) != 0 || len(e.KunReadings) != 0 || len(e.Compounds) != 0 {
		t.Errorf("garbage should degrade to empty lists: %+v", e)
	}
}

func TestEntry_Valid(t *testing.T) {
	if (Entry{}).Valid() {
		t.Error("entry without character should be invalid")
	}
	if !(Entry{Character: "腕"}).Valid() {
		t.Error("entry with character should be valid")
	}
}
