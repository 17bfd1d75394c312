package ocr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ironsheep/wordbrain-reader/internal/board"
)

// MismatchError reports recognized text whose letter count differs from the
// number of tiles on the board.
type MismatchError struct {
	Found    int
	Expected int
	Raw      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("recognized %d letters, board has %d tiles: %q", e.Found, e.Expected, e.Raw)
}

// Is makes a *MismatchError match board.ErrLetterCountMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == board.ErrLetterCountMismatch
}

// Normalize lowercases text and removes all Unicode whitespace.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(text))
}

// Validate checks that raw holds exactly tilesPerRow² letters once
// normalized.
func Validate(raw string, tilesPerRow int) error {
	expected := tilesPerRow * tilesPerRow
	found := utf8.RuneCountInString(Normalize(raw))
	if found != expected {
		return &MismatchError{Found: found, Expected: expected, Raw: raw}
	}
	return nil
}

// Clean turns validated OCR text into the board output: lowercased, trimmed,
// with "|" read as "i". Row breaks are kept.
func Clean(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(raw)), "|", "i")
}
