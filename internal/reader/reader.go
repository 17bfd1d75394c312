// Package reader runs the full board reading pipeline for one screenshot:
// crop, detect, persist the images, recognize the letters, validate them
// against the grid, and persist the properties record.
package reader

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ironsheep/wordbrain-reader/internal/board"
	"github.com/ironsheep/wordbrain-reader/internal/config"
	"github.com/ironsheep/wordbrain-reader/internal/imaging"
	"github.com/ironsheep/wordbrain-reader/internal/ocr"
	"github.com/ironsheep/wordbrain-reader/internal/persist"
)

// Result is the outcome of reading one screenshot.
type Result struct {
	// Source names the screenshot.
	Source string

	// OutputDir holds the artifacts written for this screenshot.
	OutputDir string

	// Properties is the detected board.
	Properties *board.Properties

	// Record is the properties record as persisted.
	Record persist.Record
}

// Reader processes screenshots with a fixed configuration.
//
// Every screenshot gets its own output directory. When two sources share a
// file stem the later one gets a numbered suffix, e.g. "4x4-2".
type Reader struct {
	cfg        *config.Config
	params     board.Params
	recognizer ocr.Recognizer

	mu   sync.Mutex
	dirs map[string]string
}

// New validates cfg and returns a Reader. A nil recognizer skips letter
// recognition.
func New(cfg *config.Config, recognizer ocr.Recognizer) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	return &Reader{
		cfg:        cfg,
		params:     params,
		recognizer: recognizer,
		dirs:       make(map[string]string),
	}, nil
}

// Process loads the screenshot at path and reads it. Artifacts go to a
// directory named after the file inside the configured output directory.
func (r *Reader) Process(path string) (*Result, error) {
	img, info, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("screenshot loaded", "path", path,
		"width", info.Width, "height", info.Height, "format", info.Format)

	return r.ProcessImage(path, img)
}

// ProcessImage reads an already loaded screenshot. source names it in logs,
// in the record and in the output directory.
//
// When detection fails the partial images are still written before the
// error is returned. A letter count mismatch returns both the Result and
// an error matching board.ErrLetterCountMismatch.
func (r *Reader) ProcessImage(source string, img image.Image) (*Result, error) {
	cropped, err := imaging.CropFractions(img, r.cfg.Crop.Header, r.cfg.Crop.Footer)
	if err != nil {
		return nil, err
	}

	w := persist.NewWriter(r.outputDir(source))

	props, err := board.Detect(cropped, r.params)
	if err != nil {
		var de *board.DetectError
		if errors.As(err, &de) {
			if serr := w.SaveImages(de.Letters, de.Annotated); serr != nil {
				slog.Warn("failed to save partial images", "source", source, "error", serr)
			} else {
				slog.Info("partial images saved", "dir", w.Dir())
			}
		}
		return nil, err
	}

	slog.Info("board detected", "source", source,
		"tiles_per_row", props.TilesPerRow(),
		"tile_size", props.TileSize(),
		"boxes", props.Boxes())

	if err := w.SaveImages(props.Letters(), props.Annotated()); err != nil {
		return nil, err
	}

	res := &Result{Source: source, OutputDir: w.Dir(), Properties: props}

	recognizeErr := r.recognize(props)

	res.Record = persist.NewRecord(source, props)
	if err := w.SaveProperties(res.Record); err != nil {
		return res, errors.Join(recognizeErr, err)
	}
	return res, recognizeErr
}

func (r *Reader) recognize(props *board.Properties) error {
	if r.recognizer == nil {
		return nil
	}

	text, err := r.recognizer.Recognize(props.Letters())
	if err != nil {
		return fmt.Errorf("failed to recognize letters: %w", err)
	}
	props.SetRecognized(text)

	if err := ocr.Validate(text, props.TilesPerRow()); err != nil {
		slog.Warn("recognized text rejected", "error", err)
		return err
	}

	props.SetOutput(ocr.Clean(text))
	return nil
}

// outputDir returns the artifact directory for source. The same source always
// maps to the same directory.
func (r *Reader) outputDir(source string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := filepath.Clean(source)
	if dir, ok := r.dirs[key]; ok {
		return dir
	}

	taken := make(map[string]bool, len(r.dirs))
	for _, dir := range r.dirs {
		taken[dir] = true
	}

	name := stem(source)
	dir := filepath.Join(r.cfg.OutputDir, name)
	for n := 2; taken[dir]; n++ {
		dir = filepath.Join(r.cfg.OutputDir, fmt.Sprintf("%s-%d", name, n))
	}

	r.dirs[key] = dir
	if filepath.Base(dir) != name {
		slog.Info("output directory renamed to avoid a collision", "source", source, "dir", dir)
	}
	return dir
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
