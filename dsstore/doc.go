// Package dsstore forges classic Macintosh Finder folder metadata files
// from scratch.
//
// # Overview
//
// A .DS_Store file tells Finder how to present one folder: its background
// image, window placement and size, icon view settings, and the pinned
// position of each icon. This package builds such a file without touching
// any real filesystem metadata, which is how styled disk-image windows
// get their appearance before the image is ever mounted.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Layout: The declarative description of a styled folder
//   - Placement: One pinned icon position within the folder window
//   - TreeBuilder: The sorted (name, type) entry tree serializer
//   - buddy.Allocator: The power-of-two block container the tree lives in
//
// # File Structure
//
// A forged container consists of:
//
//	[u32 marker] [header block] [bookkeeping block] [leaf] [master]
//
// All integers are big-endian. The bookkeeping block maps block ids to
// addresses and carries the synthetic free lists; the leaf holds every
// entry in case-sensitive (name, type) order; the master record describes
// the one-leaf tree.
//
// # Forging a File
//
// The usual entry point is Forge:
//
//	data, err := dsstore.Forge(dsstore.Layout{
//	    VolumeName:       "MyApp",
//	    BackgroundFile:   "background.png",
//	    BackgroundWidth:  540,
//	    BackgroundHeight: 400,
//	    IconSize:         128,
//	    TextSize:         12,
//	    Placements: []dsstore.Placement{
//	        {Name: "MyApp.app", X: 140, Y: 200},
//	        {Name: "Applications", X: 400, Y: 200},
//	    },
//	})
//
// The returned bytes are the complete file, ready to be written as
// ".DS_Store" at the styled folder's root.
//
// Forging is deterministic. Placement order in the Layout does not
// matter; entries always serialize in sorted order.
//
// # Custom Records
//
// TreeBuilder and the buddy package are exported for callers that need
// records beyond what Layout covers. Misusing them, for example adding
// entries after Finish, panics rather than producing a corrupt file.
package dsstore
