package main

import (
	"fmt"
	"log/slog"

	"github.com/dmgtools/dsforge/internal/mmfile"
	"github.com/dmgtools/dsforge/internal/writer"
	"github.com/dmgtools/dsforge/rsrc"
)

const wrapUsage = "rsrcforge <output> <icns-file>"

func runWrap(args []string) error {
	out := args[0]
	in, err := mmfile.Open(args[1])
	if err != nil {
		return fmt.Errorf("icon file %q: %w", args[1], err)
	}
	defer func() { _ = in.Close() }()

	slog.Debug("wrapping icon family", "input", args[1], "bytes", len(in.Data))
	fork := rsrc.Wrap(in.Data)

	w := &writer.FileWriter{Path: out}
	if err := w.WriteArtifact(fork); err != nil {
		return fmt.Errorf("write %q: %w", out, err)
	}
	slog.Debug("wrote artifact", "path", out, "bytes", len(fork))
	return nil
}
