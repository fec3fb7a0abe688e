package colour

// Adjustment search parameters. A 2% blend step over at most 50 steps
// walks the full range to the saturated extreme, so the search always
// terminates.
const (
	adjustStep     = 0.02
	adjustMaxSteps = 50
)

// AdjustForContrast returns the colour nearest to c (by blending toward
// black or white) whose contrast ratio against bg is at least minRatio.
// preferLighter selects the search direction: toward white when true,
// toward black when false.
//
// Best effort: if even the saturated extreme cannot reach minRatio, the
// extreme is returned. Deterministic for identical inputs.
func AdjustForContrast(c, bg RGB, minRatio float64, preferLighter bool) RGB {
	if ContrastRatio(c, bg) >= minRatio {
		return c
	}

	target := Black
	if preferLighter {
		target = White
	}

	for i := 1; i <= adjustMaxSteps; i++ {
		blended := blend(c, target, float64(i)*adjustStep)
		if ContrastRatio(blended, bg) >= minRatio {
			return blended
		}
	}

	return target
}

// blend linearly interpolates from a toward b by t in [0, 1].
func blend(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t + 0.5),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t + 0.5),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t + 0.5),
	}
}

// AccessibleTextColour returns black or white, whichever has the higher
// contrast ratio against bg. Ties prefer black. The extremes bracket the
// luminance range, so the result always meets AA for normal text.
func AccessibleTextColour(bg RGB) RGB {
	if ContrastRatio(Black, bg) >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}
