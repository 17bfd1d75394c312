// Package config holds the settings of a board reading run.
//
// Settings come from NewDefaultConfig, overlaid with a TOML file when one
// exists, overlaid with command-line flags by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/ironsheep/wordbrain-reader/internal/board"
	"github.com/ironsheep/wordbrain-reader/internal/imaging"
	"github.com/ironsheep/wordbrain-reader/internal/ocr"
)

const appName = "wordbrain-reader"

// Config is the complete configuration of the reader.
type Config struct {
	Colors ColorConfig `toml:"colors"`
	Crop   CropConfig  `toml:"crop"`
	Boxes  BoxConfig   `toml:"boxes"`
	OCR    OCRConfig   `toml:"ocr"`

	// OutputDir receives one subdirectory of artifacts per screenshot.
	OutputDir string `toml:"output_dir"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// ColorConfig selects the tile and background colors as hex strings.
type ColorConfig struct {
	Tile       string `toml:"tile"`
	Background string `toml:"background"`

	// Tolerance is the largest per-channel difference, in 8-bit units,
	// that still counts as a match. 0 requires an exact match.
	Tolerance uint8 `toml:"tolerance"`
}

// CropConfig gives the fractions of the screenshot height removed from the
// top and the bottom before detection.
type CropConfig struct {
	Header float64 `toml:"header"`
	Footer float64 `toml:"footer"`
}

// BoxConfig tunes the word box scan.
type BoxConfig struct {
	RowOffset  int `toml:"row_offset"`
	RowSpacing int `toml:"row_spacing"`
}

// OCRConfig controls letter recognition.
type OCRConfig struct {
	Enabled        bool   `toml:"enabled"`
	Language       string `toml:"language"`
	TessdataPrefix string `toml:"tessdata_prefix"`
	Whitelist      string `toml:"whitelist"`

	// Grayscale drops color from the letter image before recognition.
	Grayscale bool `toml:"grayscale"`

	// Threshold binarizes the letter image before recognition; 0 disables it.
	Threshold uint8 `toml:"threshold"`

	// Invert turns light letters on dark tiles into dark on light.
	Invert bool `toml:"invert"`

	// Scale enlarges the letter image by this factor; values <= 1 keep it.
	Scale float64 `toml:"scale"`
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		Colors: ColorConfig{
			Tile:       "#e9d6b0",
			Background: "#282c34",
			Tolerance:  0,
		},
		Crop: CropConfig{
			Header: 0.2,
			Footer: 0.1,
		},
		Boxes: BoxConfig{
			RowOffset:  board.DefaultBoxRowOffset,
			RowSpacing: board.DefaultBoxRowSpacing,
		},
		OCR: OCRConfig{
			Enabled:   true,
			Language:  "eng",
			Whitelist: ocr.LetterWhitelist,
			Grayscale: true,
			Threshold: 0,
			Invert:    false,
			Scale:     1,
		},
		OutputDir: filepath.Join(xdg.StateHome, appName),
		LogLevel:  "info",
	}
}

// DefaultPath returns the config file found in the XDG config directories,
// or the path where one would be created when none exists.
func DefaultPath() string {
	rel := filepath.Join(appName, "config.toml")
	if path, err := xdg.SearchConfigFile(rel); err == nil {
		return path
	}
	return filepath.Join(xdg.ConfigHome, rel)
}

// LoadConfigFromFile overlays the TOML file at path onto the defaults.
// A missing file is not an error.
func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	return config, nil
}

// OCROptions builds the recognizer options from the OCR settings.
func (c *Config) OCROptions() ocr.Options {
	return ocr.Options{
		Language:       c.OCR.Language,
		TessdataPrefix: c.OCR.TessdataPrefix,
		Whitelist:      c.OCR.Whitelist,
		Preprocess: ocr.PreprocessOptions{
			Scale:     c.OCR.Scale,
			Grayscale: c.OCR.Grayscale,
			Threshold: c.OCR.Threshold,
			Invert:    c.OCR.Invert,
		},
	}
}

// Validate checks ranges and that both colors parse.
func (c *Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if err := validateFraction("crop.header", c.Crop.Header); err != nil {
		return err
	}
	if err := validateFraction("crop.footer", c.Crop.Footer); err != nil {
		return err
	}
	if c.Crop.Header+c.Crop.Footer >= 1 {
		return fmt.Errorf("crop.header + crop.footer must be < 1, got %g", c.Crop.Header+c.Crop.Footer)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.OCR.Enabled && c.OCR.Language == "" {
		return errors.New("ocr.language must not be empty when OCR is enabled")
	}
	return nil
}

// Params builds the detection parameters from the color and box settings.
func (c *Config) Params() (board.Params, error) {
	tile, err := imaging.ParseColorMatcher(c.Colors.Tile, c.Colors.Tolerance)
	if err != nil {
		return board.Params{}, fmt.Errorf("invalid colors.tile: %w", err)
	}
	background, err := imaging.ParseColorMatcher(c.Colors.Background, c.Colors.Tolerance)
	if err != nil {
		return board.Params{}, fmt.Errorf("invalid colors.background: %w", err)
	}

	p := board.Params{
		Tile:          tile,
		Background:    background,
		BoxRowOffset:  c.Boxes.RowOffset,
		BoxRowSpacing: c.Boxes.RowSpacing,
	}
	if err := p.Validate(); err != nil {
		return board.Params{}, err
	}
	return p, nil
}

func validateFraction(name string, v float64) error {
	if v < 0 || v >= 1 {
		return fmt.Errorf("%s must be in [0, 1), got %g", name, v)
	}
	return nil
}
