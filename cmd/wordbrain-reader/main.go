package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironsheep/wordbrain-reader/internal/config"
	"github.com/ironsheep/wordbrain-reader/internal/logger"
	"github.com/ironsheep/wordbrain-reader/internal/ocr"
	"github.com/ironsheep/wordbrain-reader/internal/reader"
)

const appName = "wordbrain-reader"

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// options holds the command-line flags. Only flags the user set override
// the loaded configuration.
type options struct {
	configPath  string
	outputDir   string
	tileColor   string
	bgColor     string
	header      float64
	footer      float64
	tolerance   uint8
	rowOffset   int
	rowSpacing  int
	noOCR       bool
	tessdata    string
	jsonOutput  bool
	logLevel    string
	showVersion bool
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		slog.Error("Error executing command", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " [flags] SCREENSHOT...",
		Short: "Extract the letter grid and word lengths from WordBrain screenshots",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Segments WordBrain screenshots into a letter image and word lengths, then reads the letters. %s",
			color.New(color.FgBlue).Sprintf("(%s)", Version),
		),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				printVersion(cmd)
				return nil
			}
			if len(args) == 0 {
				return cmd.Usage()
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel)
			slog.Debug("configuration loaded", "output_dir", cfg.OutputDir, "ocr", cfg.OCR.Enabled)

			var recognizer ocr.Recognizer
			if cfg.OCR.Enabled {
				recognizer = ocr.NewTesseract(cfg.OCROptions())
			}
			r, err := reader.New(cfg, recognizer)
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), r, args, opts.jsonOutput)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/wordbrain-reader/config.toml)")
	pf.Float64Var(&opts.header, "header", 0, "Fraction of the screenshot height cropped from the top")
	pf.Float64Var(&opts.footer, "footer", 0, "Fraction of the screenshot height cropped from the bottom")
	pf.StringVarP(&opts.logLevel, "log-level", "l", "", "Log level: debug, info, warn, error (env "+logger.EnvLevel+")")

	f := rootCmd.Flags()
	f.StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory receiving one artifact folder per screenshot")
	f.StringVar(&opts.tileColor, "tile-color", "", "Hex color of the letter tiles")
	f.StringVar(&opts.bgColor, "background-color", "", "Hex color of the board background")
	f.Uint8Var(&opts.tolerance, "tolerance", 0, "Per-channel color tolerance (0 = exact match)")
	f.IntVar(&opts.rowOffset, "box-row-offset", 0, "Rows below the first box edge where boxes are measured")
	f.IntVar(&opts.rowSpacing, "box-row-spacing", 0, "Extra rows between consecutive rows of boxes")
	f.BoolVar(&opts.noOCR, "no-ocr", false, "Skip letter recognition")
	f.StringVar(&opts.tessdata, "tessdata", "", "Directory holding Tesseract language data")
	f.BoolVar(&opts.jsonOutput, "json", false, "Print results as JSON")
	f.BoolVarP(&opts.showVersion, "version", "v", false, "Print version and exit")

	rootCmd.AddCommand(newPaletteCmd(opts))

	return rootCmd
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", appName, Version)
	fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(out, "  Tesseract:  %s\n", ocr.Version())
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if changed("tile-color") {
		cfg.Colors.Tile = opts.tileColor
	}
	if changed("background-color") {
		cfg.Colors.Background = opts.bgColor
	}
	if changed("header") {
		cfg.Crop.Header = opts.header
	}
	if changed("footer") {
		cfg.Crop.Footer = opts.footer
	}
	if changed("tolerance") {
		cfg.Colors.Tolerance = opts.tolerance
	}
	if changed("box-row-offset") {
		cfg.Boxes.RowOffset = opts.rowOffset
	}
	if changed("box-row-spacing") {
		cfg.Boxes.RowSpacing = opts.rowSpacing
	}
	if changed("no-ocr") && opts.noOCR {
		cfg.OCR.Enabled = false
	}
	if changed("tessdata") {
		cfg.OCR.TessdataPrefix = opts.tessdata
	}
	if changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}
