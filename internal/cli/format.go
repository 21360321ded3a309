package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/safenetcreations/my-invocies-sub000/internal/branding"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// formatResult formats a full extraction report.
func formatResult(result branding.ExtractionResult, format string, preview bool) (string, error) {
	switch format {
	case "hex", "":
		return formatResultText(result, preview && stdoutIsTerminal()), nil
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
	}
}

// formatPalette formats a palette without the report fields.
func formatPalette(palette branding.ColorPalette, format string, preview bool) (string, error) {
	switch format {
	case "hex", "":
		return formatPaletteText(palette, preview && stdoutIsTerminal()), nil
	case "json":
		data, err := json.MarshalIndent(palette, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, json)", format)
	}
}

func formatResultText(result branding.ExtractionResult, preview bool) string {
	var b strings.Builder

	b.WriteString(formatPaletteText(result.Palette, preview))

	b.WriteString("\nDominant colours:\n")
	for _, c := range result.DominantColors {
		b.WriteString("  " + colourLine(c, preview) + "\n")
	}

	fmt.Fprintf(&b, "\nContrast ratios: primary %.2f:1, secondary %.2f:1, accent %.2f:1\n",
		result.ContrastRatios.Primary, result.ContrastRatios.Secondary, result.ContrastRatios.Accent)
	fmt.Fprintf(&b, "WCAG AA compliant: %t\n", result.WCAGCompliant)

	return b.String()
}

func formatPaletteText(palette branding.ColorPalette, preview bool) string {
	var b strings.Builder
	rows := []struct {
		label      string
		background branding.BrandColor
		text       branding.BrandColor
	}{
		{"primary", palette.Primary, palette.TextOnPrimary},
		{"secondary", palette.Secondary, palette.TextOnSecondary},
		{"accent", palette.Accent, palette.TextOnAccent},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-10s %s  text %s\n", row.label, colourLine(row.background, preview), string(row.text))
	}
	return b.String()
}

// colourLine renders a colour as its hex code, optionally preceded by a
// truecolor swatch block.
func colourLine(c branding.BrandColor, preview bool) string {
	if !preview {
		return string(c)
	}
	rgb, err := c.RGB()
	if err != nil {
		return string(c)
	}
	block := fmt.Sprintf("%s%d;%d;%d%s%s%s",
		ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix,
		strings.Repeat(" ", swatchWidth), ansiReset)
	return block + " " + string(c)
}

// stdoutIsTerminal reports whether stdout is a TTY; previews are suppressed
// when output is piped or redirected.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
