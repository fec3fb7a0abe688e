// Package schemefile loads and saves colour schemes as role-to-hex
// documents in JSON, YAML, or TOML, selected by file extension.
//
// Loading is strict: missing required roles, unknown keys, and malformed
// hex values are errors. Silently skipping a misspelled role would
// under-report accessibility issues, so the loader fails fast instead.
package schemefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/luminatehq/lumen/internal/colour"
)

// document is the on-disk scheme representation. All colours are hex
// strings; brightness defaults to light when omitted.
type document struct {
	Brightness string `json:"brightness,omitempty" yaml:"brightness,omitempty" toml:"brightness,omitempty"`

	Primary      string `json:"primary" yaml:"primary" toml:"primary"`
	OnPrimary    string `json:"on_primary" yaml:"on_primary" toml:"on_primary"`
	Secondary    string `json:"secondary" yaml:"secondary" toml:"secondary"`
	OnSecondary  string `json:"on_secondary" yaml:"on_secondary" toml:"on_secondary"`
	Surface      string `json:"surface" yaml:"surface" toml:"surface"`
	OnSurface    string `json:"on_surface" yaml:"on_surface" toml:"on_surface"`
	Background   string `json:"background" yaml:"background" toml:"background"`
	OnBackground string `json:"on_background" yaml:"on_background" toml:"on_background"`
	Error        string `json:"error" yaml:"error" toml:"error"`
	OnError      string `json:"on_error" yaml:"on_error" toml:"on_error"`

	Tertiary             string `json:"tertiary,omitempty" yaml:"tertiary,omitempty" toml:"tertiary,omitempty"`
	OnTertiary           string `json:"on_tertiary,omitempty" yaml:"on_tertiary,omitempty" toml:"on_tertiary,omitempty"`
	PrimaryContainer     string `json:"primary_container,omitempty" yaml:"primary_container,omitempty" toml:"primary_container,omitempty"`
	OnPrimaryContainer   string `json:"on_primary_container,omitempty" yaml:"on_primary_container,omitempty" toml:"on_primary_container,omitempty"`
	SecondaryContainer   string `json:"secondary_container,omitempty" yaml:"secondary_container,omitempty" toml:"secondary_container,omitempty"`
	OnSecondaryContainer string `json:"on_secondary_container,omitempty" yaml:"on_secondary_container,omitempty" toml:"on_secondary_container,omitempty"`
	ErrorContainer       string `json:"error_container,omitempty" yaml:"error_container,omitempty" toml:"error_container,omitempty"`
	OnErrorContainer     string `json:"on_error_container,omitempty" yaml:"on_error_container,omitempty" toml:"on_error_container,omitempty"`
}

// Load reads a scheme document from path. The format is selected by file
// extension: .json, .yaml/.yml, or .toml.
func Load(path string) (colour.Scheme, error) {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified scheme path, intended to be read
	if err != nil {
		return colour.Scheme{}, fmt.Errorf("failed to read scheme file: %w", err)
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return colour.Scheme{}, fmt.Errorf("failed to parse JSON scheme: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return colour.Scheme{}, fmt.Errorf("failed to parse YAML scheme: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return colour.Scheme{}, fmt.Errorf("failed to parse TOML scheme: %w", err)
		}
	default:
		return colour.Scheme{}, fmt.Errorf("unsupported scheme file extension %q (expected .json, .yaml, .yml, or .toml)", ext)
	}

	return doc.toScheme()
}

// Encode serialises a scheme to the given format: "json", "yaml", or "toml".
func Encode(scheme colour.Scheme, format string) ([]byte, error) {
	doc := fromScheme(scheme)

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported scheme format %q (expected json, yaml, or toml)", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode scheme: %w", err)
	}
	return data, nil
}

// Save writes a scheme document to path, in the format selected by the
// file extension.
func Save(path string, scheme colour.Scheme) error {
	var format string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		format = "json"
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return fmt.Errorf("unsupported scheme file extension %q (expected .json, .yaml, .yml, or .toml)", ext)
	}

	data, err := Encode(scheme, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scheme file: %w", err)
	}
	return nil
}

// toScheme validates the document and converts it to a Scheme.
func (d document) toScheme() (colour.Scheme, error) {
	var scheme colour.Scheme

	if d.Brightness != "" {
		brightness, err := colour.ParseBrightness(d.Brightness)
		if err != nil {
			return colour.Scheme{}, err
		}
		scheme.Brightness = brightness
	}

	required := []struct {
		role string
		hex  string
		dst  *colour.RGB
	}{
		{"primary", d.Primary, &scheme.Primary},
		{"on_primary", d.OnPrimary, &scheme.OnPrimary},
		{"secondary", d.Secondary, &scheme.Secondary},
		{"on_secondary", d.OnSecondary, &scheme.OnSecondary},
		{"surface", d.Surface, &scheme.Surface},
		{"on_surface", d.OnSurface, &scheme.OnSurface},
		{"background", d.Background, &scheme.Background},
		{"on_background", d.OnBackground, &scheme.OnBackground},
		{"error", d.Error, &scheme.Error},
		{"on_error", d.OnError, &scheme.OnError},
	}

	for _, r := range required {
		if r.hex == "" {
			return colour.Scheme{}, fmt.Errorf("scheme is missing required role %q", r.role)
		}
		rgb, err := colour.ParseHex(r.hex)
		if err != nil {
			return colour.Scheme{}, fmt.Errorf("role %q: %w", r.role, err)
		}
		*r.dst = rgb
	}

	optional := []struct {
		baseRole, onRole string
		baseHex, onHex   string
		baseDst, onDst   **colour.RGB
	}{
		{"tertiary", "on_tertiary", d.Tertiary, d.OnTertiary, &scheme.Tertiary, &scheme.OnTertiary},
		{"primary_container", "on_primary_container", d.PrimaryContainer, d.OnPrimaryContainer, &scheme.PrimaryContainer, &scheme.OnPrimaryContainer},
		{"secondary_container", "on_secondary_container", d.SecondaryContainer, d.OnSecondaryContainer, &scheme.SecondaryContainer, &scheme.OnSecondaryContainer},
		{"error_container", "on_error_container", d.ErrorContainer, d.OnErrorContainer, &scheme.ErrorContainer, &scheme.OnErrorContainer},
	}

	for _, o := range optional {
		if o.baseHex == "" && o.onHex == "" {
			continue
		}
		if o.baseHex == "" || o.onHex == "" {
			return colour.Scheme{}, fmt.Errorf("roles %q and %q must be provided together", o.baseRole, o.onRole)
		}
		base, err := colour.ParseHex(o.baseHex)
		if err != nil {
			return colour.Scheme{}, fmt.Errorf("role %q: %w", o.baseRole, err)
		}
		on, err := colour.ParseHex(o.onHex)
		if err != nil {
			return colour.Scheme{}, fmt.Errorf("role %q: %w", o.onRole, err)
		}
		*o.baseDst = &base
		*o.onDst = &on
	}

	return scheme, nil
}

// fromScheme converts a Scheme to its document representation.
func fromScheme(s colour.Scheme) document {
	doc := document{
		Brightness:   s.Brightness.String(),
		Primary:      s.Primary.Hex(),
		OnPrimary:    s.OnPrimary.Hex(),
		Secondary:    s.Secondary.Hex(),
		OnSecondary:  s.OnSecondary.Hex(),
		Surface:      s.Surface.Hex(),
		OnSurface:    s.OnSurface.Hex(),
		Background:   s.Background.Hex(),
		OnBackground: s.OnBackground.Hex(),
		Error:        s.Error.Hex(),
		OnError:      s.OnError.Hex(),
	}

	if s.Tertiary != nil && s.OnTertiary != nil {
		doc.Tertiary = s.Tertiary.Hex()
		doc.OnTertiary = s.OnTertiary.Hex()
	}
	if s.PrimaryContainer != nil && s.OnPrimaryContainer != nil {
		doc.PrimaryContainer = s.PrimaryContainer.Hex()
		doc.OnPrimaryContainer = s.OnPrimaryContainer.Hex()
	}
	if s.SecondaryContainer != nil && s.OnSecondaryContainer != nil {
		doc.SecondaryContainer = s.SecondaryContainer.Hex()
		doc.OnSecondaryContainer = s.OnSecondaryContainer.Hex()
	}
	if s.ErrorContainer != nil && s.OnErrorContainer != nil {
		doc.ErrorContainer = s.ErrorContainer.Hex()
		doc.OnErrorContainer = s.OnErrorContainer.Hex()
	}

	return doc
}
