package render

import (
	"strings"
	"unicode/utf8"

	"kanjigen/pkg/kanji"
)

// The layout routines are pure: they see text only through a measure
// function, so tests can drive them with fixed-width measurements and the
// renderer can plug in real font metrics.

// chip is one positioned reading chip. W includes horizontal padding;
// height is Metrics.ChipHeight.
type chip struct {
	Token string
	X, Y  float64
	W     float64
}

// flowChips lays reading tokens out left to right from (startX, startY),
// wrapping to a new row when a chip's right edge would pass rightEdge.
// A chip ending exactly on rightEdge stays on its row. Returns the chips
// and the y cursor just below the last row.
func flowChips(tokens []string, startX, startY, rightEdge float64, m Metrics, measure func(string) float64) ([]chip, float64) {
	if len(tokens) == 0 {
		return nil, startY
	}

	chips := make([]chip, 0, len(tokens))
	x, y := startX, startY
	for _, tok := range tokens {
		w := measure(tok) + 2*m.ChipPadX
		if x+w > rightEdge && x > startX {
			x = startX
			y += m.ChipHeight() + m.ChipRowGap
		}
		chips = append(chips, chip{Token: tok, X: x, Y: y, W: w})
		x += w + m.ChipGap
	}
	return chips, y + m.ChipHeight()
}

// splitChipToken splits a token at the first script-boundary marker
// (middle dot or period) into two color segments. The marker stays with
// the first segment. ok is false when the token has no marker.
func splitChipToken(tok string) (head, tail string, ok bool) {
	i := strings.IndexAny(tok, "・.")
	if i < 0 {
		return tok, "", false
	}
	_, size := utf8.DecodeRuneInString(tok[i:])
	return tok[:i+size], tok[i+size:], true
}

// packGloss greedily packs gloss words onto a first line limited to 90%
// of firstAvail, spilling the remainder onto lines limited to 90% of
// fullAvail. first is empty when not even the first word fits.
func packGloss(gloss string, firstAvail, fullAvail float64, measure func(string) float64) (first string, rest []string) {
	words := strings.Fields(gloss)
	if len(words) == 0 {
		return "", nil
	}

	spill := 0
	for i, word := range words {
		test := first
		if test != "" {
			test += " "
		}
		test += word
		if measure(test) > firstAvail*0.9 {
			spill = i
			break
		}
		first = test
		spill = i + 1
	}

	line := ""
	for _, word := range words[spill:] {
		test := line
		if test != "" {
			test += " "
		}
		test += word
		if measure(test) <= fullAvail*0.9 {
			line = test
			continue
		}
		if line != "" {
			rest = append(rest, line)
		}
		line = word
	}
	if line != "" {
		rest = append(rest, line)
	}
	return first, rest
}

// compoundLine is one painted row of the compound box. Continuation rows
// carry only a gloss remainder.
type compoundLine struct {
	Word    string
	Reading string
	Gloss   string
}

// layoutCompounds turns compounds into paint rows. Each compound's first
// row holds word, reading and as much gloss as fits beside them; overflow
// gloss continues on full-width rows.
func layoutCompounds(compounds []kanji.Compound, textWidth float64, m Metrics, measure func(string) float64) []compoundLine {
	var lines []compoundLine
	for _, c := range compounds {
		used := measure(c.Word) + m.WordGap + measure(c.Reading) + m.ReadingGap
		first, rest := packGloss(c.Gloss, textWidth-used, textWidth, measure)
		lines = append(lines, compoundLine{Word: c.Word, Reading: c.Reading, Gloss: first})
		for _, g := range rest {
			lines = append(lines, compoundLine{Gloss: g})
		}
	}
	return lines
}
