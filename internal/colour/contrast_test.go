package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name      string
		rgb       RGB
		want      float64
		tolerance float64
	}{
		{name: "black", rgb: Black, want: 0.0, tolerance: 0.0001},
		{name: "white", rgb: White, want: 1.0, tolerance: 0.0001},
		{name: "red", rgb: RGB{R: 255}, want: 0.2126, tolerance: 0.0001},
		{name: "green", rgb: RGB{G: 255}, want: 0.7152, tolerance: 0.0001},
		{name: "blue", rgb: RGB{B: 255}, want: 0.0722, tolerance: 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Luminance(%v) = %f, want %f", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestContrastRatioExtremes(t *testing.T) {
	got := ContrastRatio(Black, White)
	if math.Abs(got-21.0) > 0.1 {
		t.Errorf("ContrastRatio(black, white) = %f, want ~21.0", got)
	}
}

func TestContrastRatioIdentity(t *testing.T) {
	colours := []RGB{
		Black,
		White,
		{R: 255},
		{G: 255},
		{B: 255},
		{R: 0x12, G: 0x34, B: 0x56},
		{R: 0x88, G: 0x88, B: 0x88},
	}

	for _, c := range colours {
		if got := ContrastRatio(c, c); got != 1.0 {
			t.Errorf("ContrastRatio(%s, %s) = %f, want 1.0", c.Hex(), c.Hex(), got)
		}
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	pairs := [][2]RGB{
		{Black, White},
		{{R: 255}, {G: 255}},
		{{R: 0x33, G: 0x33, B: 0x33}, White},
		{{R: 0x62, B: 0xee}, {R: 0x12, G: 0x12, B: 0x12}},
		{{R: 0xff, G: 0xd7}, {R: 0x44, G: 0x88, B: 0xcc}},
	}

	for _, p := range pairs {
		ab := ContrastRatio(p[0], p[1])
		ba := ContrastRatio(p[1], p[0])
		if ab != ba {
			t.Errorf("ContrastRatio not symmetric for %s/%s: %f vs %f", p[0].Hex(), p[1].Hex(), ab, ba)
		}
	}
}

func TestContrastRatioRange(t *testing.T) {
	pairs := [][2]RGB{
		{Black, White},
		{Black, Black},
		{{R: 0x80, G: 0x80, B: 0x80}, White},
		{{R: 0xcc}, {G: 0xcc}},
	}

	for _, p := range pairs {
		ratio := ContrastRatio(p[0], p[1])
		if ratio < 1.0 || ratio > 21.0 {
			t.Errorf("ContrastRatio(%s, %s) = %f, outside [1, 21]", p[0].Hex(), p[1].Hex(), ratio)
		}
	}
}

func TestMeetsAA(t *testing.T) {
	white := White
	tests := []struct {
		name      string
		fg        RGB
		largeText bool
		want      bool
	}{
		// #333333 on white is ~12.6:1.
		{name: "dark grey on white", fg: RGB{R: 0x33, G: 0x33, B: 0x33}, want: true},
		// #888888 on white is ~3.5:1, below the normal-text threshold.
		{name: "mid grey on white", fg: RGB{R: 0x88, G: 0x88, B: 0x88}, want: false},
		// The same pairing passes the 3:1 large-text threshold.
		{name: "mid grey on white large text", fg: RGB{R: 0x88, G: 0x88, B: 0x88}, largeText: true, want: true},
		{name: "white on white", fg: White, want: false},
		{name: "black on white", fg: Black, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsAA(tt.fg, white, tt.largeText); got != tt.want {
				t.Errorf("MeetsAA(%s, %s, %v) = %v, want %v", tt.fg.Hex(), white.Hex(), tt.largeText, got, tt.want)
			}
		})
	}
}

func TestMeetsAAA(t *testing.T) {
	tests := []struct {
		name      string
		fg, bg    RGB
		largeText bool
		want      bool
	}{
		{name: "black on white", fg: Black, bg: White, want: true},
		// #767676 on white is ~4.5:1 - AA but not AAA.
		{name: "grey on white", fg: RGB{R: 0x76, G: 0x76, B: 0x76}, bg: White, want: false},
		// The single 7:1 threshold applies to large text too.
		{name: "grey on white large text", fg: RGB{R: 0x76, G: 0x76, B: 0x76}, bg: White, largeText: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsAAA(tt.fg, tt.bg, tt.largeText); got != tt.want {
				t.Errorf("MeetsAAA(%s, %s, %v) = %v, want %v", tt.fg.Hex(), tt.bg.Hex(), tt.largeText, got, tt.want)
			}
		})
	}
}

func TestComplianceLevel(t *testing.T) {
	tests := []struct {
		name   string
		fg, bg RGB
		want   Level
	}{
		{name: "black on white is AAA", fg: Black, bg: White, want: LevelAAA},
		{name: "mid grey on white fails", fg: RGB{R: 0x88, G: 0x88, B: 0x88}, bg: White, want: LevelFail},
		// #767676 on white is ~4.54:1.
		{name: "grey on white is AA", fg: RGB{R: 0x76, G: 0x76, B: 0x76}, bg: White, want: LevelAA},
		{name: "gold on white fails", fg: RGB{R: 0xff, G: 0xd7}, bg: White, want: LevelFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComplianceLevel(tt.fg, tt.bg); got != tt.want {
				t.Errorf("ComplianceLevel(%s, %s) = %v, want %v", tt.fg.Hex(), tt.bg.Hex(), got, tt.want)
			}
		})
	}
}

// AAA classification must imply AA: the levels are ordered.
func TestComplianceLevelMonotonic(t *testing.T) {
	colours := []RGB{
		Black, White,
		{R: 0x33, G: 0x33, B: 0x33},
		{R: 0x76, G: 0x76, B: 0x76},
		{R: 0x88, G: 0x88, B: 0x88},
		{R: 0xff, G: 0xd7},
		{R: 0x62, B: 0xee},
	}

	for _, fg := range colours {
		for _, bg := range colours {
			if ComplianceLevel(fg, bg) == LevelAAA && !MeetsAA(fg, bg, false) {
				t.Errorf("pair %s/%s classified AAA but fails AA", fg.Hex(), bg.Hex())
			}
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelAAA, "AAA"},
		{LevelAA, "AA"},
		{LevelFail, "fail"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
