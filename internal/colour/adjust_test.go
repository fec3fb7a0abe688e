package colour

import "testing"

func TestAdjustForContrastDarkens(t *testing.T) {
	// Light grey on white must be darkened until it reads.
	start := RGB{R: 0xcc, G: 0xcc, B: 0xcc}
	got := AdjustForContrast(start, White, AANormalText, false)

	if ratio := ContrastRatio(got, White); ratio < AANormalText {
		t.Errorf("adjusted colour %s has ratio %f, want >= %f", got.Hex(), ratio, AANormalText)
	}
	if Luminance(got) >= Luminance(start) {
		t.Errorf("expected a darker colour than %s, got %s", start.Hex(), got.Hex())
	}
}

func TestAdjustForContrastLightens(t *testing.T) {
	start := RGB{R: 0x33, G: 0x33, B: 0x33}
	bg := RGB{R: 0x12, G: 0x12, B: 0x12}
	got := AdjustForContrast(start, bg, AANormalText, true)

	if ratio := ContrastRatio(got, bg); ratio < AANormalText {
		t.Errorf("adjusted colour %s has ratio %f, want >= %f", got.Hex(), ratio, AANormalText)
	}
	if Luminance(got) <= Luminance(start) {
		t.Errorf("expected a lighter colour than %s, got %s", start.Hex(), got.Hex())
	}
}

func TestAdjustForContrastAlreadyMeets(t *testing.T) {
	start := Black
	if got := AdjustForContrast(start, White, AANormalText, false); got != start {
		t.Errorf("expected %s unchanged, got %s", start.Hex(), got.Hex())
	}
}

func TestAdjustForContrastUnreachable(t *testing.T) {
	// 21:1 against a mid grey is unreachable; the search must saturate at
	// the extreme instead of looping.
	midGrey := RGB{R: 0x80, G: 0x80, B: 0x80}

	if got := AdjustForContrast(midGrey, midGrey, 21.0, true); got != White {
		t.Errorf("expected saturated white, got %s", got.Hex())
	}
	if got := AdjustForContrast(midGrey, midGrey, 21.0, false); got != Black {
		t.Errorf("expected saturated black, got %s", got.Hex())
	}
}

func TestAdjustForContrastDeterministic(t *testing.T) {
	start := RGB{R: 0xcc, G: 0x99, B: 0x44}
	bg := RGB{R: 0xf0, G: 0xf0, B: 0xf0}

	first := AdjustForContrast(start, bg, AAAText, false)
	second := AdjustForContrast(start, bg, AAAText, false)
	if first != second {
		t.Errorf("AdjustForContrast not deterministic: %s vs %s", first.Hex(), second.Hex())
	}
}

func TestAdjustForContrastConvergence(t *testing.T) {
	backgrounds := []RGB{
		White,
		Black,
		{R: 0x80, G: 0x80, B: 0x80},
		{R: 0xff, G: 0xd7},
		{R: 0x12, G: 0x12, B: 0x12},
	}
	starts := []RGB{
		{R: 0xcc, G: 0xcc, B: 0xcc},
		{R: 0x62, B: 0xee},
		{G: 0xff},
	}

	for _, bg := range backgrounds {
		for _, start := range starts {
			preferLighter := ContrastRatio(White, bg) > ContrastRatio(Black, bg)
			got := AdjustForContrast(start, bg, AANormalText, preferLighter)
			if ratio := ContrastRatio(got, bg); ratio < AANormalText {
				t.Errorf("AdjustForContrast(%s, %s) = %s with ratio %f, want >= %f",
					start.Hex(), bg.Hex(), got.Hex(), ratio, AANormalText)
			}
		}
	}
}

func TestAccessibleTextColour(t *testing.T) {
	tests := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{name: "white background", bg: White, want: Black},
		{name: "black background", bg: Black, want: White},
		{name: "mid grey background", bg: RGB{R: 0x80, G: 0x80, B: 0x80}, want: Black},
		{name: "gold background", bg: RGB{R: 0xff, G: 0xd7}, want: Black},
		{name: "navy background", bg: RGB{B: 0x80}, want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AccessibleTextColour(tt.bg); got != tt.want {
				t.Errorf("AccessibleTextColour(%s) = %s, want %s", tt.bg.Hex(), got.Hex(), tt.want.Hex())
			}
		})
	}
}

// The better of black and white always meets AA against any background.
func TestAccessibleTextColourAlwaysAA(t *testing.T) {
	// Sweep a grid through the colour cube.
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				bg := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				fg := AccessibleTextColour(bg)
				if !MeetsAA(fg, bg, false) {
					t.Errorf("AccessibleTextColour(%s) = %s fails AA (ratio %f)",
						bg.Hex(), fg.Hex(), ContrastRatio(fg, bg))
				}
			}
		}
	}
}
