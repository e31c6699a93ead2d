package kanji

import (
	"regexp"
	"strings"

	"kanjigen/pkg/dataset"
)

// Reading tokens are classified by Unicode block. A small punctuation
// whitelist (middle dot, period, comma, prolonged-sound mark, whitespace)
// rides along with either block so annotated readings like "かど・つの"
// still classify cleanly.
var (
	hiraganaToken = regexp.MustCompile(`^[\x{3040}-\x{309F}\s・.,ー]+$`)
	katakanaToken = regexp.MustCompile(`^[\x{30A0}-\x{30FF}\s・,ー]+$`)
	hiraganaRun   = regexp.MustCompile(`[\x{3040}-\x{309F}・.,ー]+`)
	katakanaRun   = regexp.MustCompile(`[\x{30A0}-\x{30FF}・,ー]+`)

	// word (reading) = gloss
	compoundPattern = regexp.MustCompile(`^([^\s(]+)\s*\(([^)]+)\)\s*=\s*(.+)$`)
)

// Parse builds an Entry from one raw record. It never fails: malformed
// readings or compound fragments degrade to empty lists or dropped
// fragments. Rejecting entries with an empty character is the caller's job.
func Parse(rec dataset.Record) Entry {
	e := Entry{
		Character: strings.TrimSpace(rec.Kanji),
		Meaning:   strings.TrimSpace(rec.Meaning),
	}
	e.OnReadings, e.KunReadings = parseReadings(rec.Readings)
	e.Compounds = parseCompounds(rec.Compounds)
	return e
}

// parseReadings splits the raw field on semicolons and commas, then sorts
// each token into the katakana (on) or hiragana (kun) family. A token that
// mixes scripts contributes its maximal runs to both families; the relative
// order inside each family is preserved.
func parseReadings(raw string) (on, kun []string) {
	var tokens []string
	for _, part := range strings.Split(raw, ";") {
		for _, tok := range strings.Split(part, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}

	for _, tok := range tokens {
		switch {
		case hiraganaToken.MatchString(tok):
			kun = append(kun, tok)
		case katakanaToken.MatchString(tok):
			on = append(on, tok)
		default:
			for _, run := range katakanaRun.FindAllString(tok, -1) {
				if hasScriptRune(run, 0x30A0, 0x30FF) {
					on = append(on, run)
				}
			}
			for _, run := range hiraganaRun.FindAllString(tok, -1) {
				if hasScriptRune(run, 0x3040, 0x309F) {
					kun = append(kun, run)
				}
			}
		}
	}
	return on, kun
}

// hasScriptRune reports whether s has at least one rune inside [lo, hi]
// that is not whitelist punctuation. The middle dot and prolonged-sound
// mark live inside the katakana block, so a run made purely of them
// carries no reading and is discarded.
func hasScriptRune(s string, lo, hi rune) bool {
	for _, r := range s {
		switch r {
		case '・', 'ー', '.', ',', ' ':
			continue
		}
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}

// parseCompounds splits the raw field on semicolons and keeps every
// fragment shaped "word (reading) = gloss". Fragments that do not match
// are dropped without error.
func parseCompounds(raw string) []Compound {
	var compounds []Compound
	for _, frag := range strings.Split(raw, ";") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		m := compoundPattern.FindStringSubmatch(frag)
		if m == nil {
			continue
		}
		compounds = append(compounds, Compound{
			Word:    strings.TrimSpace(m[1]),
			Reading: strings.TrimSpace(m[2]),
			Gloss:   strings.TrimSpace(m[3]),
		})
	}
	return compounds
}
