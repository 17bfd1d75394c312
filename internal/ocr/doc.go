// Package ocr reads the assembled letter image of a board as text.
//
// Recognition goes through the Recognizer interface. Tesseract implements it
// with the Tesseract engine via gosseract/v2, after optional preprocessing
// (scaling, grayscale, thresholding, inversion) done with bild.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// A tessdata directory other than the system default can be selected with
// Options.TessdataPrefix.
//
// # Validation
//
// Recognized text is accepted only when, after lowercasing and removing
// whitespace, it holds exactly one character per tile. Validate reports a
// *MismatchError otherwise, which matches board.ErrLetterCountMismatch
// under errors.Is. Clean produces the final output, turning the frequent
// "|" misread back into "i".
package ocr
