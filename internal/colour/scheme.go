package colour

import (
	"fmt"
	"math"
)

// Brightness represents whether a scheme targets light or dark surfaces.
type Brightness int

const (
	// BrightnessLight is a light scheme (dark text on light surfaces).
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark scheme (light text on dark surfaces).
	BrightnessDark
)

// String returns the string representation of a Brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessDark:
		return "dark"
	case BrightnessLight:
		return "light"
	default:
		return "unknown"
	}
}

// ParseBrightness parses a brightness name ("light" or "dark").
func ParseBrightness(s string) (Brightness, error) {
	switch s {
	case "light":
		return BrightnessLight, nil
	case "dark":
		return BrightnessDark, nil
	default:
		return BrightnessLight, fmt.Errorf("invalid brightness %q (expected light or dark)", s)
	}
}

// Scheme is a set of named role colours. Each "On" colour is the text
// colour paired with its base colour. Tertiary and container roles are
// optional; a nil pointer means the role is absent, not black.
type Scheme struct {
	Brightness Brightness `json:"brightness"`

	Primary      RGB `json:"primary"`
	OnPrimary    RGB `json:"on_primary"`
	Secondary    RGB `json:"secondary"`
	OnSecondary  RGB `json:"on_secondary"`
	Surface      RGB `json:"surface"`
	OnSurface    RGB `json:"on_surface"`
	Background   RGB `json:"background"`
	OnBackground RGB `json:"on_background"`
	Error        RGB `json:"error"`
	OnError      RGB `json:"on_error"`

	Tertiary             *RGB `json:"tertiary,omitempty"`
	OnTertiary           *RGB `json:"on_tertiary,omitempty"`
	PrimaryContainer     *RGB `json:"primary_container,omitempty"`
	OnPrimaryContainer   *RGB `json:"on_primary_container,omitempty"`
	SecondaryContainer   *RGB `json:"secondary_container,omitempty"`
	OnSecondaryContainer *RGB `json:"on_secondary_container,omitempty"`
	ErrorContainer       *RGB `json:"error_container,omitempty"`
	OnErrorContainer     *RGB `json:"on_error_container,omitempty"`
}

// Pair is a foreground/background role pairing within a scheme.
type Pair struct {
	Role       string
	Foreground RGB
	Background RGB
}

// Pairs enumerates the role pairings of the scheme in a fixed order.
// Required pairs are always present; optional pairs appear only when both
// sides of the pairing are set.
func (s Scheme) Pairs() []Pair {
	pairs := []Pair{
		{Role: "primary/onPrimary", Foreground: s.OnPrimary, Background: s.Primary},
		{Role: "secondary/onSecondary", Foreground: s.OnSecondary, Background: s.Secondary},
		{Role: "surface/onSurface", Foreground: s.OnSurface, Background: s.Surface},
		{Role: "background/onBackground", Foreground: s.OnBackground, Background: s.Background},
		{Role: "error/onError", Foreground: s.OnError, Background: s.Error},
	}

	if s.Tertiary != nil && s.OnTertiary != nil {
		pairs = append(pairs, Pair{Role: "tertiary/onTertiary", Foreground: *s.OnTertiary, Background: *s.Tertiary})
	}
	if s.PrimaryContainer != nil && s.OnPrimaryContainer != nil {
		pairs = append(pairs, Pair{Role: "primaryContainer/onPrimaryContainer", Foreground: *s.OnPrimaryContainer, Background: *s.PrimaryContainer})
	}
	if s.SecondaryContainer != nil && s.OnSecondaryContainer != nil {
		pairs = append(pairs, Pair{Role: "secondaryContainer/onSecondaryContainer", Foreground: *s.OnSecondaryContainer, Background: *s.SecondaryContainer})
	}
	if s.ErrorContainer != nil && s.OnErrorContainer != nil {
		pairs = append(pairs, Pair{Role: "errorContainer/onErrorContainer", Foreground: *s.OnErrorContainer, Background: *s.ErrorContainer})
	}

	return pairs
}

// Scheme derivation constants.
//
// Secondary and tertiary stay analogous to the primary (within 30-60 deg
// on the colour wheel) for visual cohesion; error uses the universal red
// hue. Lightness targets follow the brightness so derived colours keep at
// least large-text contrast (3:1) against the background.
const (
	secondaryHueOffset = 30.0
	tertiaryHueOffset  = 60.0
	errorHue           = 0.0 // Red - errors, destructive actions
	errorSaturation    = 0.75

	darkLightnessTarget  = 0.60
	lightLightnessTarget = 0.45

	minDerivedBgContrast = 3.0
)

// DefaultBackground returns the base background colour for a brightness
// when the caller does not supply one.
func DefaultBackground(b Brightness) RGB {
	if b == BrightnessDark {
		return RGB{R: 0x12, G: 0x12, B: 0x12}
	}
	return RGB{R: 0xfa, G: 0xfa, B: 0xfa}
}

// NewAccessibleScheme derives a full scheme from a primary colour and a
// background. Every role pairing in the result meets WCAG AA for normal
// text by construction: each "On" colour is selected with
// AccessibleTextColour or AdjustForContrast against its base colour.
func NewAccessibleScheme(primary, background RGB, brightness Brightness) Scheme {
	h, s, _ := rgbToHSL(primary)

	secondary := deriveRole(h+secondaryHueOffset, s, background, brightness)
	tertiary := deriveRole(h+tertiaryHueOffset, s, background, brightness)
	errColour := deriveRole(errorHue, math.Max(s, errorSaturation), background, brightness)
	surface := deriveSurface(background, brightness)

	primaryContainer := deriveContainer(primary, brightness)
	secondaryContainer := deriveContainer(secondary, brightness)
	errorContainer := deriveContainer(errColour, brightness)

	sch := Scheme{
		Brightness: brightness,

		Primary:      primary,
		OnPrimary:    AccessibleTextColour(primary),
		Secondary:    secondary,
		OnSecondary:  AccessibleTextColour(secondary),
		Surface:      surface,
		OnSurface:    AccessibleTextColour(surface),
		Background:   background,
		OnBackground: AccessibleTextColour(background),
		Error:        errColour,
		OnError:      AccessibleTextColour(errColour),

		Tertiary:           &tertiary,
		PrimaryContainer:   &primaryContainer,
		SecondaryContainer: &secondaryContainer,
		ErrorContainer:     &errorContainer,
	}

	onTertiary := AccessibleTextColour(tertiary)
	sch.OnTertiary = &onTertiary

	// Container text keeps the base colour's character where possible,
	// darkening or lightening just enough to reach AA.
	onPrimaryContainer := containerText(primary, primaryContainer)
	onSecondaryContainer := containerText(secondary, secondaryContainer)
	onErrorContainer := containerText(errColour, errorContainer)
	sch.OnPrimaryContainer = &onPrimaryContainer
	sch.OnSecondaryContainer = &onSecondaryContainer
	sch.OnErrorContainer = &onErrorContainer

	return sch
}

// deriveRole builds a role colour at the given hue and saturation, then
// walks its lightness away from the background until it reaches at least
// large-text contrast.
func deriveRole(hue, sat float64, bg RGB, brightness Brightness) RGB {
	for hue < 0 {
		hue += 360
	}
	for hue >= 360 {
		hue -= 360
	}

	lightness := lightLightnessTarget
	if brightness == BrightnessDark {
		lightness = darkLightnessTarget
	}

	_, rgb := adjustLightnessForContrast(hue, sat, lightness, bg, minDerivedBgContrast, brightness, 10)
	return rgb
}

// deriveSurface creates a surface as a slightly offset variant of the
// background: dark schemes lift it, light schemes drop it. Saturation is
// reduced for a muted effect.
func deriveSurface(bg RGB, brightness Brightness) RGB {
	h, s, l := rgbToHSL(bg)

	if brightness == BrightnessDark {
		l = math.Min(1.0, l+0.05)
	} else {
		l = math.Max(0.0, l-0.05)
	}

	return HSLToRGB(h, s*0.8, l)
}

// deriveContainer creates a tinted container variant of a base colour:
// near-white tint for light schemes, near-black shade for dark schemes.
func deriveContainer(base RGB, brightness Brightness) RGB {
	h, s, _ := rgbToHSL(base)

	if brightness == BrightnessDark {
		return HSLToRGB(h, s*0.6, 0.25)
	}
	return HSLToRGB(h, s*0.6, 0.90)
}

// containerText picks a text colour for a container, preferring a
// contrast-adjusted variant of the base colour over plain black/white.
func containerText(base, container RGB) RGB {
	preferLighter := ContrastRatio(White, container) > ContrastRatio(Black, container)
	return AdjustForContrast(base, container, AANormalText, preferLighter)
}

// adjustLightnessForContrast iteratively adjusts lightness until minimum
// contrast against bg is achieved or maxAttempts is exhausted. Dark
// schemes step lighter, light schemes step darker.
func adjustLightnessForContrast(h, s, lightness float64, bg RGB, minContrast float64, brightness Brightness, maxAttempts int) (float64, RGB) {
	const stepSize = 0.05

	rgb := HSLToRGB(h, s, lightness)
	contrast := ContrastRatio(rgb, bg)

	attempts := 0
	for contrast < minContrast && attempts < maxAttempts {
		if brightness == BrightnessDark {
			lightness = math.Min(0.99, lightness+stepSize)
		} else {
			lightness = math.Max(0.01, lightness-stepSize)
		}
		rgb = HSLToRGB(h, s, lightness)
		contrast = ContrastRatio(rgb, bg)
		attempts++
	}

	return lightness, rgb
}
