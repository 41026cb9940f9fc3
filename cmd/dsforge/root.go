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
	Use:   forgeUsage,
	Short: "Forge Finder folder metadata (.DS_Store)",
	Long: `dsforge builds the classic Finder metadata file that styles a folder:
background picture, window geometry, icon size, label size, and a pinned
position for every named file. The usual consumer is a disk image whose
root folder should open as a polished installer window.

Coordinates are the icon centers in points, measured from the window's
top-left corner.

Example:
  dsforge .DS_Store bg.png 640 400 "My App" 128 12
  dsforge .DS_Store bg.png 640 400 "My App" 128 12 MyApp.app 160 200 Applications 480 200`,
	Version:       "0.1.0",
	Args:          placementArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		return runForge(args)
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
