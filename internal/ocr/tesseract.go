package ocr

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// LetterWhitelist restricts recognition to letters. "|" is kept because
// Tesseract often reads a capital I as a bar; Clean maps it back.
const LetterWhitelist = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ|"

// Recognizer turns an image of letter tiles into text.
type Recognizer interface {
	Recognize(img image.Image) (string, error)
}

// Options configures a Tesseract recognizer.
type Options struct {
	// Language is the Tesseract language code, "eng" when empty.
	Language string

	// TessdataPrefix overrides the directory holding *.traineddata files.
	TessdataPrefix string

	// Whitelist limits the characters Tesseract may produce. Empty allows all.
	Whitelist string

	// Preprocess is applied to the image before recognition.
	Preprocess PreprocessOptions
}

// Tesseract is a Recognizer backed by the Tesseract engine.
//
// Each call to Recognize uses its own engine client, so a Tesseract may be
// shared between goroutines.
type Tesseract struct {
	opts Options
}

// NewTesseract returns a Tesseract recognizer with the given options.
func NewTesseract(opts Options) *Tesseract {
	if opts.Language == "" {
		opts.Language = "eng"
	}
	return &Tesseract{opts: opts}
}

// Recognize runs OCR over img treated as a single block of text.
//
// The image is preprocessed, encoded as PNG in memory and handed to
// Tesseract. Tesseract's dictionaries stay loaded; the whitelist is what keeps
// the output to single letters.
func (t *Tesseract) Recognize(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("empty image")
	}

	prepared := Preprocess(img, t.opts.Preprocess)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, prepared, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.opts.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(t.opts.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set PSM: %w", err)
	}

	if t.opts.Whitelist != "" {
		if err := client.SetWhitelist(t.opts.Whitelist); err != nil {
			return "", fmt.Errorf("failed to set whitelist: %w", err)
		}
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	slog.Debug("letters recognized", "language", t.opts.Language, "text", text)
	return text, nil
}

// Version reports the version of the linked Tesseract library.
func Version() string {
	return gosseract.Version()
}
