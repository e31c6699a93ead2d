package render

// Baseline layout constants, authored against a 1920x1080 canvas. Every
// value is multiplied by the uniform scale factor before use so the same
// composition holds at any output resolution.
const (
	baseMargin        = 80.0  // left and right canvas margin
	baseColumnOffset  = 350.0 // text column start, relative to the left margin
	baseKanjiDy       = 30.0  // main glyph drop below the top margin
	baseContentHeight = 400.0 // estimated content height used to center vertically
	baseMinTopMargin  = 50.0
	baseVSpace        = 20.0 // spacing between stacked elements
	baseMeaningStep   = 45.0
	baseReadingStep   = 40.0
	baseFontLarge     = 220.0
	baseFontMedium    = 32.0
	baseFontSmall     = 24.0
	baseChipPadX      = 14.0
	baseChipPadY      = 8.0
	baseChipRadius    = 10.0
	baseChipGap       = 15.0
	baseChipRowGap    = 10.0
	baseBoxPad        = 15.0
	baseLineStep      = 30.0 // compound box line step
	baseWordGap       = 8.0  // word -> reading gap inside a compound line
	baseReadingGap    = 12.0 // reading -> gloss gap inside a compound line
	baseBorderWidth   = 2.0
	baseBottomMargin  = 30.0
	baseBoxInset      = 20.0 // safety inset on the compound box width
)

// Metrics holds every scaled layout dimension for one canvas size.
// Dimensions never scale below one device unit, so tiny canvases degrade
// to cramped output instead of zero-size glyphs and gaps.
type Metrics struct {
	Scale float64

	Margin        float64
	ColumnOffset  float64
	KanjiDy       float64
	ContentHeight float64
	MinTopMargin  float64
	VSpace        float64
	MeaningStep   float64
	ReadingStep   float64
	FontLarge     float64
	FontMedium    float64
	FontSmall     float64
	ChipPadX      float64
	ChipPadY      float64
	ChipRadius    float64
	ChipGap       float64
	ChipRowGap    float64
	BoxPad        float64
	LineStep      float64
	WordGap       float64
	ReadingGap    float64
	BorderWidth   float64
	BottomMargin  float64
	BoxInset      float64
}

// NewMetrics computes the scaled metrics for a target canvas, relative to
// the given baseline canvas (normally 1920x1080).
func NewMetrics(width, height, baseWidth, baseHeight int) Metrics {
	scale := float64(width) / float64(baseWidth)
	if sy := float64(height) / float64(baseHeight); sy < scale {
		scale = sy
	}

	at := func(v float64) float64 {
		v *= scale
		if v < 1 {
			return 1
		}
		return v
	}

	return Metrics{
		Scale:         scale,
		Margin:        at(baseMargin),
		ColumnOffset:  at(baseColumnOffset),
		KanjiDy:       at(baseKanjiDy),
		ContentHeight: at(baseContentHeight),
		MinTopMargin:  at(baseMinTopMargin),
		VSpace:        at(baseVSpace),
		MeaningStep:   at(baseMeaningStep),
		ReadingStep:   at(baseReadingStep),
		FontLarge:     at(baseFontLarge),
		FontMedium:    at(baseFontMedium),
		FontSmall:     at(baseFontSmall),
		ChipPadX:      at(baseChipPadX),
		ChipPadY:      at(baseChipPadY),
		ChipRadius:    at(baseChipRadius),
		ChipGap:       at(baseChipGap),
		ChipRowGap:    at(baseChipRowGap),
		BoxPad:        at(baseBoxPad),
		LineStep:      at(baseLineStep),
		WordGap:       at(baseWordGap),
		ReadingGap:    at(baseReadingGap),
		BorderWidth:   at(baseBorderWidth),
		BottomMargin:  at(baseBottomMargin),
		BoxInset:      at(baseBoxInset),
	}
}

// ChipHeight is the height of one reading chip: the medium font size plus
// vertical padding on both sides.
func (m Metrics) ChipHeight() float64 {
	return m.FontMedium + 2*m.ChipPadY
}
