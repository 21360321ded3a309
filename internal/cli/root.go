// Package cli provides the command-line interface for brandkit.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/safenetcreations/my-invocies-sub000/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Brand palette tooling for tenant logos",
	Long: `Brandkit derives brand colour palettes from tenant logo images.

Given a logo, it extracts the dominant colours, selects primary, secondary
and accent backgrounds, and pairs each with a WCAG AA readable text colour.
The resulting palette themes invoice documents and the application shell.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Accept legacy spellings from the earlier extraction tooling.
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(paletteCmd)
}

// normalizeFlagName maps legacy flag spellings onto their current names.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "colours", "colors":
		name = "clusters"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the CLI logger honouring --verbose and --quiet.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "brandkit",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
