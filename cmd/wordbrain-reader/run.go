package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/ironsheep/wordbrain-reader/internal/persist"
	"github.com/ironsheep/wordbrain-reader/internal/reader"
)

var (
	okStyle     = color.New(color.FgHiGreen, color.Bold)
	warnStyle   = color.New(color.FgHiYellow, color.Bold)
	failStyle   = color.New(color.FgHiRed, color.Bold)
	labelStyle  = color.New(color.FgHiCyan)
	lettersText = color.New(color.FgHiWhite, color.Bold)
)

// processor reads one screenshot. *reader.Reader implements it.
type processor interface {
	Process(path string) (*reader.Result, error)
}

// jsonResult is the --json form of one screenshot's outcome.
type jsonResult struct {
	Source    string          `json:"source"`
	OutputDir string          `json:"output_dir,omitempty"`
	Record    *persist.Record `json:"record,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// errSomeFailed is returned when at least one screenshot was not read cleanly.
var errSomeFailed = errors.New("some screenshots could not be read")

// run processes every path in order. A failure is reported and the next
// path is processed; the returned error reflects whether any failed.
func run(stdout, stderr io.Writer, p processor, paths []string, asJSON bool) error {
	failed := 0
	results := make([]jsonResult, 0, len(paths))

	for _, path := range paths {
		res, err := p.Process(path)
		if err != nil {
			failed++
			slog.Error("failed to read screenshot", "path", path, "error", err)
		}

		jr := jsonResult{Source: path}
		if res != nil {
			jr.OutputDir = res.OutputDir
			rec := res.Record
			jr.Record = &rec
		}
		if err != nil {
			jr.Error = err.Error()
		}
		results = append(results, jr)

		if !asJSON {
			printSummary(stdout, stderr, jr)
		}
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSomeFailed, failed, len(paths))
	}
	return nil
}

func printSummary(stdout, stderr io.Writer, jr jsonResult) {
	switch {
	case jr.Record == nil:
		failStyle.Fprint(stderr, "FAIL ")
		fmt.Fprintf(stderr, "%s: %s\n", jr.Source, jr.Error)
		return
	case jr.Error != "":
		warnStyle.Fprint(stdout, "WARN ")
	default:
		okStyle.Fprint(stdout, "OK   ")
	}

	rec := jr.Record
	fmt.Fprintln(stdout, jr.Source)
	labelStyle.Fprint(stdout, "  grid:    ")
	fmt.Fprintf(stdout, "%dx%d tiles of %dpx\n", rec.TilesInRow, rec.TilesInRow, rec.TileDimension)
	labelStyle.Fprint(stdout, "  words:   ")
	fmt.Fprintf(stdout, "%v\n", rec.Boxes)
	if rec.Output != "" {
		labelStyle.Fprint(stdout, "  letters: ")
		lettersText.Fprintf(stdout, "%q\n", rec.Output)
	} else if rec.Recognized != "" {
		labelStyle.Fprint(stdout, "  read:    ")
		fmt.Fprintf(stdout, "%q\n", rec.Recognized)
	}
	if jr.Error != "" {
		labelStyle.Fprint(stdout, "  error:   ")
		fmt.Fprintln(stdout, jr.Error)
	}
	labelStyle.Fprint(stdout, "  output:  ")
	fmt.Fprintln(stdout, jr.OutputDir)
}
