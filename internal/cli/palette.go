package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safenetcreations/my-invocies-sub000/internal/branding"
)

var (
	// Palette command flags
	palettePrimary   string
	paletteSecondary string
	paletteAccent    string
	paletteFormat    string
	paletteOutput    string
	palettePreview   bool
)

// paletteCmd represents the palette command.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Build a brand palette from hand-picked colours",
	Long: `Build a brand palette from caller-supplied colours instead of a logo.

Only the accessibility adjustment runs: each background is paired with
whichever of black or white reads best against it, with one corrective
adjustment when the contrast falls short of WCAG AA. A missing secondary is
derived by darkening the primary; a missing accent by rotating the primary's
hue 120 degrees.

Examples:
  # Palette from a single brand colour
  brandkit palette --primary '#2563eb'

  # Fully specified palette
  brandkit palette --primary '#2563eb' --secondary '#10b981' --accent '#f59e0b'`,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVar(&palettePrimary, "primary", "", "primary brand colour as #rrggbb (required)")
	paletteCmd.Flags().StringVar(&paletteSecondary, "secondary", "", "secondary brand colour as #rrggbb")
	paletteCmd.Flags().StringVar(&paletteAccent, "accent", "", "accent brand colour as #rrggbb")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "hex", "output format (hex, json)")
	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "", "output file (default: stdout)")
	paletteCmd.Flags().BoolVar(&palettePreview, "preview", false, "show colour previews in terminal")
	_ = paletteCmd.MarkFlagRequired("primary")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	palette, err := branding.BuildPalette(palettePrimary, paletteSecondary, paletteAccent)
	if err != nil {
		return fmt.Errorf("failed to build palette: %w", err)
	}
	logger.Debug("palette built", "primary", palette.Primary, "secondary", palette.Secondary, "accent", palette.Accent)

	output, err := formatPalette(palette, paletteFormat, palettePreview)
	if err != nil {
		return err
	}
	return writeOutput(output, paletteOutput)
}
