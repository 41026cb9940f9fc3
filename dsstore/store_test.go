package dsstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmgtools/dsforge/internal/format"
)

func standardLayout() Layout {
	return Layout{
		VolumeName:       "MyVolume",
		BackgroundFile:   "bg.png",
		BackgroundWidth:  400,
		BackgroundHeight: 300,
		IconSize:         128,
		TextSize:         12,
		Placements: []Placement{
			{Name: "App.app", X: 200, Y: 150},
		},
	}
}

// TestForge_StandardScenario checks the complete single-placement
// container against its known layout: 4164 bytes, leaf at 2080, master
// at 4128.
func TestForge_StandardScenario(t *testing.T) {
	data, err := Forge(standardLayout())
	require.NoError(t, err)
	require.Len(t, data, 4164)

	// Container framing.
	assert.Equal(t, []byte{0, 0, 0, 1}, data[:4], "file marker")
	assert.Equal(t, format.BuddySignature, data[4:8])
	assert.Equal(t, uint32(32), format.ReadU32(data, 4+format.HeaderBookAddrOffset))
	assert.Equal(t, uint32(2048), format.ReadU32(data, 4+format.HeaderBookLenOffset))

	// Bookkeeping: the directory must send readers to the master record.
	book := data[36:2084]
	assert.Equal(t, uint32(3), format.ReadU32(book, format.BookCountOffset))
	dirOff := format.BookTableOffset + 4*format.BlockTableEntries
	assert.Equal(t, "DSDB", string(book[dirOff+5:dirOff+9]))
	assert.Equal(t, uint32(2), format.ReadU32(book, dirOff+9), "master record id")

	// Leaf entries, in sorted order.
	leaf := data[2084:4132]
	entries := parseLeaf(t, leaf)
	require.Len(t, entries, 7)

	dot := utf16Name(t, ".")
	wantOrder := []struct {
		name []byte
		typ  string
		kind string
	}{
		{dot, format.RecordBackground, format.KindBlob},
		{dot, format.RecordIconViewFlag, format.KindBool},
		{dot, format.RecordWindowInfo, format.KindBlob},
		{dot, format.RecordIconViewOptions, format.KindBlob},
		{dot, format.RecordTextSize, format.KindShort},
		{dot, format.RecordBackgroundAlias, format.KindBlob},
		{utf16Name(t, "App.app"), format.RecordIconLocation, format.KindBlob},
	}
	for i, want := range wantOrder {
		assert.Equal(t, want.name, entries[i].nameUTF16, "entry %d name", i)
		assert.Equal(t, want.typ, entries[i].recordType, "entry %d type", i)
		assert.Equal(t, want.kind, entries[i].kind, "entry %d kind", i)
	}

	// The alias blob and the BKGD record's embedded length agree.
	alias, err := format.EncodeAlias("MyVolume", "bg.png")
	require.NoError(t, err)
	assert.Equal(t, alias, entries[5].value)
	assert.Equal(t, uint32(len(alias)), format.ReadU32(entries[0].value, format.BackgroundAliasLenOffset))
	assert.Equal(t, "PctB", string(entries[0].value[:4]))

	// Window geometry: origin plus background size.
	win := entries[2].value
	assert.Equal(t, uint16(200), format.ReadU16(win, format.WindowTopOffset))
	assert.Equal(t, uint16(300), format.ReadU16(win, format.WindowLeftOffset))
	assert.Equal(t, uint16(500), format.ReadU16(win, format.WindowBottomOffset))
	assert.Equal(t, uint16(700), format.ReadU16(win, format.WindowRightOffset))

	// Icon view and label size.
	assert.Equal(t, uint16(128), format.ReadU16(entries[3].value, format.IconViewSizeOffset))
	assert.Equal(t, []byte{0, 0, 0, 12}, entries[4].value)

	// The placement's icon location.
	loc := entries[6].value
	assert.Equal(t, uint32(200), format.ReadU32(loc, format.IconLocXOffset))
	assert.Equal(t, uint32(150), format.ReadU32(loc, format.IconLocYOffset))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0, 0}, loc[format.IconLocUnknownOffset:])

	// Master record at 4128.
	master := data[4132:4164]
	assert.Equal(t, uint32(1), format.ReadU32(master, format.MasterRootOffset))
	assert.Equal(t, uint32(7), format.ReadU32(master, format.MasterCountOffset))
	assert.Equal(t, uint32(format.MasterPageSize), format.ReadU32(master, format.MasterPageOffset))
}

// TestForge_Deterministic verifies identical bytes across runs and
// across placement orderings.
func TestForge_Deterministic(t *testing.T) {
	l := standardLayout()
	l.Placements = append(l.Placements, Placement{Name: "Applications", X: 420, Y: 150})

	first, err := Forge(l)
	require.NoError(t, err)
	second, err := Forge(l)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	reversed := l
	reversed.Placements = []Placement{l.Placements[1], l.Placements[0]}
	third, err := Forge(reversed)
	require.NoError(t, err)
	assert.Equal(t, first, third, "placement order must not affect the output")
}

// TestForge_NoPlacements allows a layout that only styles the folder.
func TestForge_NoPlacements(t *testing.T) {
	l := standardLayout()
	l.Placements = nil

	data, err := Forge(l)
	require.NoError(t, err)
	require.Len(t, data, 4164)

	leaf := data[2084:4132]
	assert.Equal(t, uint32(6), format.ReadU32(leaf, format.LeafCountOffset))
}

// TestForge_ManyPlacements pushes the leaf past 2048 bytes and checks the
// container stays structurally consistent.
func TestForge_ManyPlacements(t *testing.T) {
	l := standardLayout()
	l.Placements = nil
	for i := 0; i < 40; i++ {
		l.Placements = append(l.Placements, Placement{
			Name: "File" + string(rune('A'+i%26)) + string(rune('0'+i%10)),
			X:    uint32(10 * i),
			Y:    uint32(20 * i),
		})
	}

	data, err := Forge(l)
	require.NoError(t, err)

	// Header + bookkeeping + 4096-byte leaf + master, plus the marker.
	require.Len(t, data, 4+32+2048+4096+32)

	book := data[36:2084]
	assert.Equal(t, uint32(2080|12), format.ReadU32(book, format.BookTableOffset+4), "leaf table word doubles its size")

	leaf := data[2084 : 2084+4096]
	assert.Equal(t, uint32(46), format.ReadU32(leaf, format.LeafCountOffset))

	master := data[len(data)-32:]
	assert.Equal(t, uint32(46), format.ReadU32(master, format.MasterCountOffset))
}

// TestForge_ValidationErrors exercises every Layout rejection.
func TestForge_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
		want   error
	}{
		{"empty volume", func(l *Layout) { l.VolumeName = "" }, ErrLayout},
		{"empty background", func(l *Layout) { l.BackgroundFile = "" }, ErrLayout},
		{"zero width", func(l *Layout) { l.BackgroundWidth = 0 }, ErrLayout},
		{"width overflows window", func(l *Layout) { l.BackgroundWidth = maxWindowWidth + 1 }, ErrLayout},
		{"zero height", func(l *Layout) { l.BackgroundHeight = 0 }, ErrLayout},
		{"height overflows window", func(l *Layout) { l.BackgroundHeight = maxWindowHeight + 1 }, ErrLayout},
		{"zero icon size", func(l *Layout) { l.IconSize = 0 }, ErrLayout},
		{"huge icon size", func(l *Layout) { l.IconSize = 1 << 16 }, ErrLayout},
		{"zero text size", func(l *Layout) { l.TextSize = 0 }, ErrLayout},
		{"empty placement name", func(l *Layout) { l.Placements[0].Name = "" }, ErrLayout},
		{"volume name too long", func(l *Layout) { l.VolumeName = "an absurdly long volume name" }, ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := standardLayout()
			tt.mutate(&l)
			_, err := Forge(l)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestForge_BoundaryDimensions accepts the extremes of the window range.
func TestForge_BoundaryDimensions(t *testing.T) {
	l := standardLayout()
	l.BackgroundWidth = maxWindowWidth
	l.BackgroundHeight = maxWindowHeight

	data, err := Forge(l)
	require.NoError(t, err)

	leaf := data[2084:4132]
	win := parseLeaf(t, leaf)[2].value
	assert.Equal(t, uint16(0xffff), format.ReadU16(win, format.WindowBottomOffset))
	assert.Equal(t, uint16(0xffff), format.ReadU16(win, format.WindowRightOffset))
}
