package colour

import "math"

// WCAG contrast thresholds for text.
const (
	// AANormalText is the minimum contrast ratio for normal-size text (AA).
	AANormalText = 4.5
	// AALargeText is the minimum contrast ratio for large text (AA).
	AALargeText = 3.0
	// AAAText is the minimum contrast ratio for AAA conformance.
	AAAText = 7.0
)

// Level classifies a foreground/background pairing against the WCAG
// contrast thresholds for normal-size text.
type Level int

const (
	// LevelFail indicates the pairing is below the AA threshold.
	LevelFail Level = iota
	// LevelAA indicates the pairing meets AA but not AAA.
	LevelAA
	// LevelAAA indicates the pairing meets AAA.
	LevelAAA
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(rgb RGB) float64 {
	rf := float64(rgb.R) / 255.0
	rg := float64(rgb.G) / 255.0
	rb := float64(rgb.B) / 255.0

	// Apply gamma correction.
	rf = gammaCorrect(rf)
	rg = gammaCorrect(rg)
	rb = gammaCorrect(rb)

	// Calculate luminance using WCAG formula.
	return 0.2126*rf + 0.7152*rg + 0.0722*rb
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsAA reports whether the foreground/background pairing meets WCAG AA:
// 4.5:1 for normal text, 3:1 for large text.
func MeetsAA(fg, bg RGB, largeText bool) bool {
	threshold := AANormalText
	if largeText {
		threshold = AALargeText
	}
	return ContrastRatio(fg, bg) >= threshold
}

// MeetsAAA reports whether the pairing meets WCAG AAA. A single 7:1
// threshold is applied regardless of text size. WCAG 2.1 formally allows
// 4.5:1 for large-text AAA; the stricter single threshold is kept here so
// AAA always implies the strongest readability guarantee.
func MeetsAAA(fg, bg RGB, largeText bool) bool {
	_ = largeText
	return ContrastRatio(fg, bg) >= AAAText
}

// ComplianceLevel classifies a pairing for normal-size text: AAA at 7:1,
// AA at 4.5:1, fail below. For large-text classification use MeetsAA and
// MeetsAAA directly with the size flag.
func ComplianceLevel(fg, bg RGB) Level {
	ratio := ContrastRatio(fg, bg)
	switch {
	case ratio >= AAAText:
		return LevelAAA
	case ratio >= AANormalText:
		return LevelAA
	default:
		return LevelFail
	}
}
