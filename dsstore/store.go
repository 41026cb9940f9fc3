package dsstore

import (
	"bytes"
	"fmt"
	"math"

	"github.com/dmgtools/dsforge/dsstore/buddy"
	"github.com/dmgtools/dsforge/internal/format"
)

// currentFolder is the entry name addressing the folder the metadata file
// itself lives in.
const currentFolder = "."

// Window geometry headroom: the fixed origin plus the content span must
// fit the 16-bit window record fields.
const (
	maxWindowWidth  = math.MaxUint16 - format.WindowOriginLeft
	maxWindowHeight = math.MaxUint16 - format.WindowOriginTop
)

// Placement pins one item's icon inside the folder window.
type Placement struct {
	// Name is the item's filename exactly as it appears in the folder.
	Name string

	// X and Y locate the icon's center in window points.
	X, Y uint32
}

// Layout describes a styled folder: a full-window background image,
// fixed window geometry, icon view settings, and pinned icon positions.
type Layout struct {
	// VolumeName is the name of the mounted volume, at most 27 bytes.
	VolumeName string

	// BackgroundFile is the background image's filename inside the
	// folder, at most 63 bytes.
	BackgroundFile string

	// BackgroundWidth and BackgroundHeight are the image dimensions in
	// points. The Finder window is sized to exactly cover them.
	BackgroundWidth, BackgroundHeight int

	// IconSize is the icon edge length in points.
	IconSize int

	// TextSize is the icon label point size.
	TextSize int

	// Placements pins icons. Items without a placement keep whatever
	// position Finder assigns them.
	Placements []Placement
}

func (l Layout) validate() error {
	if l.VolumeName == "" {
		return fmt.Errorf("empty volume name: %w", ErrLayout)
	}
	if l.BackgroundFile == "" {
		return fmt.Errorf("empty background file name: %w", ErrLayout)
	}
	if l.BackgroundWidth < 1 || l.BackgroundWidth > maxWindowWidth {
		return fmt.Errorf("background width %d outside [1, %d]: %w", l.BackgroundWidth, maxWindowWidth, ErrLayout)
	}
	if l.BackgroundHeight < 1 || l.BackgroundHeight > maxWindowHeight {
		return fmt.Errorf("background height %d outside [1, %d]: %w", l.BackgroundHeight, maxWindowHeight, ErrLayout)
	}
	if l.IconSize < 1 || l.IconSize > math.MaxUint16 {
		return fmt.Errorf("icon size %d outside [1, %d]: %w", l.IconSize, math.MaxUint16, ErrLayout)
	}
	if l.TextSize < 1 || l.TextSize > math.MaxUint16 {
		return fmt.Errorf("text size %d outside [1, %d]: %w", l.TextSize, math.MaxUint16, ErrLayout)
	}
	for _, p := range l.Placements {
		if p.Name == "" {
			return fmt.Errorf("placement with empty name: %w", ErrLayout)
		}
	}
	return nil
}

// Forge builds the complete folder metadata container for l and returns
// its exact file bytes. The output is deterministic: the same layout
// always forges the same bytes.
func Forge(l Layout) ([]byte, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	// The background alias is encoded first: the BKGD record embeds its
	// length.
	alias, err := format.EncodeAlias(l.VolumeName, l.BackgroundFile)
	if err != nil {
		return nil, err
	}

	a := buddy.New()
	tree := NewTree(a)

	// Folder-level records, all keyed on the current folder.
	if err := tree.AddBlob(currentFolder, format.RecordBackground, format.EncodeBackground(uint32(len(alias)))); err != nil {
		return nil, err
	}
	if err := tree.AddBool(currentFolder, format.RecordIconViewFlag, true); err != nil {
		return nil, err
	}
	if err := tree.AddBlob(currentFolder, format.RecordWindowInfo, format.EncodeWindow(uint16(l.BackgroundWidth), uint16(l.BackgroundHeight))); err != nil {
		return nil, err
	}
	if err := tree.AddBlob(currentFolder, format.RecordIconViewOptions, format.EncodeIconView(uint16(l.IconSize))); err != nil {
		return nil, err
	}
	if err := tree.AddShort(currentFolder, format.RecordTextSize, uint16(l.TextSize)); err != nil {
		return nil, err
	}
	if err := tree.AddBlob(currentFolder, format.RecordBackgroundAlias, alias); err != nil {
		return nil, err
	}

	// One icon position per placed item.
	for _, p := range l.Placements {
		if err := tree.AddBlob(p.Name, format.RecordIconLocation, format.EncodeIconLocation(p.X, p.Y)); err != nil {
			return nil, fmt.Errorf("placement %q: %w", p.Name, err)
		}
	}

	a.Finalize(tree.Finish())

	var out bytes.Buffer
	if _, err := a.WriteTo(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
