package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironsheep/wordbrain-reader/internal/imaging"
	"github.com/ironsheep/wordbrain-reader/internal/logger"
)

func newPaletteCmd(opts *options) *cobra.Command {
	var count int
	var quant uint

	cmd := &cobra.Command{
		Use:   "palette SCREENSHOT",
		Short: "List the dominant colors of a cropped screenshot",
		Long: "Lists the most frequent colors of a screenshot after the header and footer crop. " +
			"Use it to pick the tile and background colors for a new theme.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quant > imaging.MaxQuantBits {
				return fmt.Errorf("--quantize must be at most %d, got %d", imaging.MaxQuantBits, quant)
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel)

			img, _, err := imaging.Load(args[0])
			if err != nil {
				return err
			}
			cropped, err := imaging.CropFractions(img, cfg.Crop.Header, cfg.Crop.Footer)
			if err != nil {
				return err
			}

			tile, err := imaging.ParseColorMatcher(cfg.Colors.Tile, cfg.Colors.Tolerance)
			if err != nil {
				return err
			}
			bg, err := imaging.ParseColorMatcher(cfg.Colors.Background, cfg.Colors.Tolerance)
			if err != nil {
				return err
			}

			printPalette(cmd.OutOrStdout(), imaging.DominantColors(cropped, count, quant), tile, bg)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 8, "Number of colors to list")
	cmd.Flags().UintVarP(&quant, "quantize", "q", 0, "Clear this many low bits of each channel before counting (0-7)")

	return cmd
}

func printPalette(w io.Writer, colors []imaging.ColorFrequency, tile, bg imaging.ColorMatcher) {
	for _, cf := range colors {
		fmt.Fprintf(w, "%s %6.2f%% %8d", cf.Hex, cf.Percentage, cf.Count)

		c, err := imaging.ParseHexColor(cf.Hex)
		if err == nil {
			switch {
			case tile.Matches(c):
				color.New(color.FgHiGreen).Fprint(w, "  tile")
			case bg.Matches(c):
				color.New(color.FgHiBlue).Fprint(w, "  background")
			}
		}
		fmt.Fprintln(w)
	}
}
