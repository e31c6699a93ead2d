// Package kanji holds the study-entry data model and the lenient parser
// that turns raw CSV fields into structured entries.
package kanji

// Compound is a multi-character word containing the entry's kanji,
// annotated with its phonetic reading and an English gloss.
type Compound struct {
	Word    string
	Reading string
	Gloss   string
}

// Entry is one kanji's complete study record. Entries are built once by
// Parse and never mutated afterwards.
type Entry struct {
	Character   string
	Meaning     string
	OnReadings  []string // katakana readings
	KunReadings []string // hiragana readings
	Compounds   []Compound
}

// Valid reports whether the entry can be rendered. An entry without a
// character has nothing to draw and is counted as a failure by the batch
// driver.
func (e Entry) Valid() bool {
	return e.Character != ""
}
