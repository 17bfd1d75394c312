// Package persist writes the artifacts of one board reading to disk.
//
// A Writer owns one output directory holding at most one of each artifact:
// the letter image, the annotated screenshot and the properties record.
// Each artifact is written once; later saves of the same artifact are
// ignored. An artifact only counts as written after its write succeeded,
// so a failed save may be retried.
package persist

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/wordbrain-reader/internal/board"
)

// Artifact file names inside the output directory.
const (
	LettersFile    = "letters-only.png"
	AnnotatedFile  = "cropped-screenshot.png"
	PropertiesFile = "properties.toml"
)

// Record is the persisted summary of a board.
type Record struct {
	Source        string          `json:"source" toml:"source"`
	TileDimension int             `json:"tile_dimension" toml:"tile-dimension"`
	TilesInRow    int             `json:"tiles_in_row" toml:"tiles-in-row"`
	Boxes         []int           `json:"boxes" toml:"boxes"`
	Recognized    string          `json:"recognized,omitempty" toml:"recognized,omitempty"`
	Output        string          `json:"output,omitempty" toml:"output,omitempty"`
	Grid          board.TileGrid  `json:"grid" toml:"grid"`
	WordBoxes     board.WordBoxes `json:"word_boxes" toml:"word-boxes"`
}

// NewRecord captures the current state of p. Recognized text and output are
// included once they have been set on p.
func NewRecord(source string, p *board.Properties) Record {
	rec := Record{
		Source:        source,
		TileDimension: p.TileSize(),
		TilesInRow:    p.TilesPerRow(),
		Boxes:         p.Boxes(),
		Grid:          p.Grid(),
		WordBoxes:     p.WordBoxes(),
	}
	if text, ok := p.Recognized(); ok {
		rec.Recognized = text
	}
	if out, ok := p.Output(); ok {
		rec.Output = out
	}
	return rec
}

// Writer saves artifacts into a single directory.
type Writer struct {
	dir string

	mu      sync.Mutex
	dirDone bool
	written map[string]bool
}

// NewWriter returns a Writer for dir. The directory is created on the
// first save.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, written: make(map[string]bool)}
}

// Dir is the output directory.
func (w *Writer) Dir() string { return w.dir }

// Path returns the full path of the named artifact.
func (w *Writer) Path(name string) string { return filepath.Join(w.dir, name) }

// Written reports whether the named artifact has been saved.
func (w *Writer) Written(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written[name]
}

// SaveImages saves the letter image and the annotated screenshot. A nil
// image is skipped.
func (w *Writer) SaveImages(letters, annotated image.Image) error {
	if err := w.SaveLetters(letters); err != nil {
		return err
	}
	return w.SaveAnnotated(annotated)
}

// SaveLetters saves the assembled letter image as LettersFile.
func (w *Writer) SaveLetters(img image.Image) error {
	if img == nil {
		return nil
	}
	return w.once(LettersFile, func(path string) error {
		return imaging.Save(img, path)
	})
}

// SaveAnnotated saves the annotated screenshot as AnnotatedFile.
func (w *Writer) SaveAnnotated(img image.Image) error {
	if img == nil {
		return nil
	}
	return w.once(AnnotatedFile, func(path string) error {
		return imaging.Save(img, path)
	})
}

// SaveProperties saves rec as PropertiesFile.
func (w *Writer) SaveProperties(rec Record) error {
	return w.once(PropertiesFile, func(path string) error {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(rec); err != nil {
			return fmt.Errorf("failed to encode properties: %w", err)
		}
		return os.WriteFile(path, buf.Bytes(), 0o644)
	})
}

func (w *Writer) once(name string, write func(path string) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.written[name] {
		slog.Debug("artifact already written, skipping", "file", name, "dir", w.dir)
		return nil
	}

	if !w.dirDone {
		if err := os.MkdirAll(w.dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		w.dirDone = true
	}

	path := w.Path(name)
	if err := write(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	w.written[name] = true

	slog.Debug("artifact written", "path", path)
	return nil
}

// LoadRecord reads a properties record written by SaveProperties.
func LoadRecord(path string) (Record, error) {
	var rec Record
	if _, err := toml.DecodeFile(path, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode properties: %w", err)
	}
	return rec, nil
}
