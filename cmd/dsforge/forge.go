package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmgtools/dsforge/dsstore"
	"github.com/dmgtools/dsforge/internal/writer"
)

const forgeUsage = "dsforge <output> <background-image> <width> <height> <volume-name> <icon-size> <text-size> [<file> <x> <y>]..."

// placementArgs admits the seven fixed arguments plus whole
// <file> <x> <y> triples.
func placementArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 7 || (len(args)-7)%3 != 0 {
		return fmt.Errorf(
			"expected 7 argument(s) plus <file> <x> <y> triples, got %d\nUsage: %s",
			len(args),
			forgeUsage,
		)
	}
	return nil
}

// parseUint32 accepts plain decimal only. Signs, spaces, and trailing
// garbage all fail.
func parseUint32(what, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a decimal number", what, s)
	}
	return uint32(v), nil
}

func parseLayout(args []string) (string, dsstore.Layout, error) {
	out := args[0]
	l := dsstore.Layout{
		BackgroundFile: args[1],
		VolumeName:     args[4],
	}

	width, err := parseUint32("background width", args[2])
	if err != nil {
		return "", l, err
	}
	height, err := parseUint32("background height", args[3])
	if err != nil {
		return "", l, err
	}
	iconSize, err := parseUint32("icon size", args[5])
	if err != nil {
		return "", l, err
	}
	textSize, err := parseUint32("text size", args[6])
	if err != nil {
		return "", l, err
	}
	l.BackgroundWidth = int(width)
	l.BackgroundHeight = int(height)
	l.IconSize = int(iconSize)
	l.TextSize = int(textSize)

	for i := 7; i < len(args); i += 3 {
		name := args[i]
		x, err := parseUint32(fmt.Sprintf("x coordinate for %q", name), args[i+1])
		if err != nil {
			return "", l, err
		}
		y, err := parseUint32(fmt.Sprintf("y coordinate for %q", name), args[i+2])
		if err != nil {
			return "", l, err
		}
		l.Placements = append(l.Placements, dsstore.Placement{Name: name, X: x, Y: y})
	}
	return out, l, nil
}

func runForge(args []string) error {
	out, layout, err := parseLayout(args)
	if err != nil {
		return err
	}

	// The alias record stores the background by name only. Requiring the
	// file up front catches a typo before Finder renders a blank window.
	if _, err := os.Stat(layout.BackgroundFile); err != nil {
		return fmt.Errorf("background image %q: %w", layout.BackgroundFile, err)
	}

	slog.Debug("forging folder metadata",
		"output", out,
		"volume", layout.VolumeName,
		"background", layout.BackgroundFile,
		"placements", len(layout.Placements))

	data, err := dsstore.Forge(layout)
	if err != nil {
		return err
	}

	w := &writer.FileWriter{Path: out}
	if err := w.WriteArtifact(data); err != nil {
		return fmt.Errorf("write %q: %w", out, err)
	}
	slog.Debug("wrote artifact", "path", out, "bytes", len(data))
	return nil
}
