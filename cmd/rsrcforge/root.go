package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   wrapUsage,
	Short: "Forge a resource fork carrying a volume icon",
	Long: `rsrcforge wraps an icon family (.icns) file into a classic resource
fork. Copy the result into a volume's .VolumeIcon.icns resource fork and
Finder shows a custom icon for the mounted volume.

Example:
  rsrcforge VolumeIcon.rsrc MyApp.icns`,
	Version:       "0.1.0",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return runWrap(args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setupLogging routes slog to stderr so stdout stays clean for scripts.
func setupLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
