package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safenetcreations/my-invocies-sub000/internal/branding"
	"github.com/safenetcreations/my-invocies-sub000/internal/tenantconfig"
	httputil "github.com/safenetcreations/my-invocies-sub000/internal/util/http"
	"github.com/safenetcreations/my-invocies-sub000/internal/util/palettecache"
)

var (
	// Extract command flags
	extractClusters      int
	extractMaxDimension  int
	extractStride        int
	extractMinBrightness float64
	extractMaxBrightness float64
	extractMinSaturation float64
	extractFormat        string
	extractOutput        string
	extractPreview       bool
	extractTenant        string
	extractStoreDir      string
	extractCacheDir      string
	extractNoCache       bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <logo>",
	Short: "Extract a brand palette from a logo image",
	Long: `Extract a brand colour palette from a logo image.

The extract command decodes the logo, clusters its colours, selects primary,
secondary and accent backgrounds and pairs each with a WCAG AA readable text
colour. The logo may be a local file or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Extract a palette with default parameters
  brandkit extract logo.png

  # Extract with a terminal preview of the swatches
  brandkit extract --preview logo.png

  # Output the full report as JSON
  brandkit extract --format json logo.png

  # Widen the sampling bounds for a very dark logo
  brandkit extract --min-brightness 0.05 logo.png

  # Extract for a tenant, persisting the result to the tenant store
  brandkit extract --tenant acme --store-dir ./tenants logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractClusters, "clusters", "c", 10, "number of colour clusters to extract (1-256)")
	extractCmd.Flags().IntVar(&extractMaxDimension, "max-dimension", 200, "working resolution bound in pixels")
	extractCmd.Flags().IntVar(&extractStride, "stride", 4, "sample every n-th pixel")
	extractCmd.Flags().Float64Var(&extractMinBrightness, "min-brightness", 0.2, "minimum pixel brightness (0-1)")
	extractCmd.Flags().Float64Var(&extractMaxBrightness, "max-brightness", 0.95, "maximum pixel brightness (0-1)")
	extractCmd.Flags().Float64Var(&extractMinSaturation, "min-saturation", 0.1, "minimum pixel saturation (0-1)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().StringVar(&extractTenant, "tenant", "", "tenant id to persist the palette for")
	extractCmd.Flags().StringVar(&extractStoreDir, "store-dir", "", "tenant store directory (requires --tenant)")
	extractCmd.Flags().StringVar(&extractCacheDir, "cache-dir", "", "palette cache directory (default: user cache dir)")
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "bypass the palette cache")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	logoPath := args[0]

	logo, err := loadLogoBytes(cmd, logoPath)
	if err != nil {
		return err
	}
	logger.Debug("logo loaded", "source", logoPath, "bytes", len(logo))

	opts := branding.Options{
		MaxDimension:  extractMaxDimension,
		ClusterCount:  extractClusters,
		SampleStride:  extractStride,
		MinBrightness: extractMinBrightness,
		MaxBrightness: extractMaxBrightness,
		MinSaturation: extractMinSaturation,
	}

	cfg := branding.ServiceConfig{
		Logger:  logger,
		Options: opts,
	}

	if !extractNoCache {
		cache, err := palettecache.New(extractCacheDir)
		if err != nil {
			return fmt.Errorf("failed to open palette cache: %w", err)
		}
		cfg.Cache = cache
	}

	if extractTenant != "" {
		storeDir := extractStoreDir
		if storeDir == "" {
			storeDir = "tenants"
		}
		store, err := tenantconfig.NewFileStore(storeDir)
		if err != nil {
			return fmt.Errorf("failed to open tenant store: %w", err)
		}
		cfg.Store = store
	}

	service := branding.NewService(cfg)
	result, err := service.ExtractForTenant(cmd.Context(), tenantOrDefault(), logo)
	if err != nil {
		return fmt.Errorf("failed to extract palette: %w", err)
	}

	if extractTenant != "" {
		logger.Info("palette stored", "tenant", extractTenant, "primary", result.Palette.Primary)
	}

	output, err := formatResult(result, extractFormat, extractPreview)
	if err != nil {
		return err
	}
	return writeOutput(output, extractOutput)
}

// tenantOrDefault returns the tenant flag, or a placeholder id for ad-hoc
// extractions that are not persisted.
func tenantOrDefault() string {
	if extractTenant != "" {
		return extractTenant
	}
	return "adhoc"
}

// loadLogoBytes reads the logo from a local file or an HTTP(S) URL.
func loadLogoBytes(cmd *cobra.Command, path string) ([]byte, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		data, err := httputil.Fetch(cmd.Context(), path, httputil.FetchOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch logo from URL: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified logo path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read logo file: %w", err)
	}
	return data, nil
}

// writeOutput writes formatted output to a file or stdout.
func writeOutput(output, path string) error {
	if path == "" {
		fmt.Print(output)
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
