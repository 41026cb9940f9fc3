// Package format houses the low-level byte layouts for classic Macintosh
// Finder metadata: the buddy-allocator container, the single-leaf entry
// tree it carries, alias records, Finder display records, and the
// resource-fork map. The goal is to keep every offset and magic in one
// place, fully constant-driven, and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

var (
	// BuddySignature is the four-byte signature at the start of the header
	// block of every allocator container.
	// Layout (big-endian):
	//   0x00  'B' 'u' 'd' '1'
	BuddySignature = []byte{'B', 'u', 'd', '1'}

	// TreeDirectoryName is the name of the single bookkeeping directory
	// entry; its value is the block id of the master tree record.
	TreeDirectoryName = []byte{'D', 'S', 'D', 'B'}
)

// Entry record types understood by Finder. Each names the structure of one
// (name, type) entry in the tree; the four characters are written raw.
const (
	// RecordBackground selects the folder background (12-byte blob).
	RecordBackground = "BKGD"

	// RecordIconViewFlag enables icon-view display (1-byte bool).
	RecordIconViewFlag = "ICVO"

	// RecordWindowInfo fixes the Finder window placement (16-byte blob).
	RecordWindowInfo = "fwi0"

	// RecordIconViewOptions carries icon size and arrangement (26-byte blob).
	RecordIconViewOptions = "icvo"

	// RecordTextSize sets the icon label point size ("shor" value).
	RecordTextSize = "icvt"

	// RecordBackgroundAlias locates the background image (alias blob).
	RecordBackgroundAlias = "pict"

	// RecordIconLocation pins one item's icon position (16-byte blob).
	RecordIconLocation = "Iloc"
)

// Entry value kinds. The kind fourcc follows the record type on the wire
// and tells the reader how to take the value bytes.
const (
	KindBlob  = "blob" // u32 length followed by raw bytes
	KindBool  = "bool" // one byte
	KindShort = "shor" // four bytes despite the name
)

// ============================================================================
// Buddy Allocator Container Constants
// ============================================================================
const (
	// FileMarker is the big-endian word every container starts with.
	FileMarker = 1

	// HeaderBlockSize is the size of the header block at address 0. It sits
	// outside the block table and is never reachable through a block id.
	HeaderBlockSize = 32

	// BookkeepingSize is the size of the bookkeeping block that follows the
	// header. It occupies block table index 0.
	BookkeepingSize = 2048

	// MinBlockShift and MinBlockSize pin the smallest allocation. Block
	// table words pack log2(size) into the low five bits of the address,
	// so addresses must stay 32-byte aligned.
	MinBlockShift = 5
	MinBlockSize  = 1 << MinBlockShift

	// BlockTableEntries is the fixed number of words in the block table.
	BlockTableEntries = 256

	// FreeListBuckets is the number of per-size free lists, one for each
	// power of two a 32-bit address space can hold.
	FreeListBuckets = 32
)

// Header block field offsets.
const (
	HeaderSignatureOffset = 0x00 // 4 bytes, "Bud1"
	HeaderBookAddrOffset  = 0x04 // ULONG, address of the bookkeeping block
	HeaderBookLenOffset   = 0x08 // ULONG, length of the bookkeeping block
	HeaderBookEchoOffset  = 0x0C // ULONG, address repeated
)

// Bookkeeping block field offsets. The directory and the free lists
// follow the table directly, so they have no fixed offsets.
const (
	BookCountOffset = 0x00 // ULONG, number of table entries in use
	BookPadOffset   = 0x04 // ULONG, zero
	BookTableOffset = 0x08 // 256 ULONG words, address | log2(size), 0 if unused
)

// ============================================================================
// Entry Tree Constants
// ============================================================================

// Leaf node header offsets. A zero mode word marks a leaf; the entries
// follow the count directly.
const (
	LeafModeOffset  = 0x00 // ULONG, 0 = leaf node
	LeafCountOffset = 0x04 // ULONG, number of entries
	LeafHeaderSize  = 0x08
)

// Master record offsets. One per container, pointed at by the "DSDB"
// directory entry.
const (
	MasterRootOffset   = 0x00 // ULONG, block id of the root node
	MasterLevelsOffset = 0x04 // ULONG, levels above the leaves, 0 here
	MasterCountOffset  = 0x08 // ULONG, total entry count
	MasterNodesOffset  = 0x0C // ULONG, total node count, 1 here
	MasterPageOffset   = 0x10 // ULONG, node page size
	MasterSize         = 0x14 // 20 bytes

	// MasterPageSize is the fixed node page size advertised to readers.
	MasterPageSize = 0x1000

	// DefaultLeafSize is the smallest leaf block ever allocated. Larger
	// entry payloads get the next power of two instead.
	DefaultLeafSize = 2048
)

// ============================================================================
// Alias Record Constants
// ============================================================================
// Field offsets within the fixed alias header (classic AliasRecord). The
// trailer of extra-info items starts right after the reserved bytes.
const (
	AliasCreatorOffset     = 0x00 // ULONG, creating application code, 0
	AliasRecordSizeOffset  = 0x04 // USHORT, total record size incl. trailer
	AliasVersionOffset     = 0x06 // USHORT, record version, always 2
	AliasKindOffset        = 0x08 // USHORT, 0 = file target
	AliasVolumeNameOffset  = 0x0A // Pascal string, length byte + 27
	AliasVolumeDateOffset  = 0x26 // ULONG, volume creation date, 0 here
	AliasVolumeSigOffset   = 0x2A // USHORT, volume filesystem signature
	AliasDriveTypeOffset   = 0x2C // USHORT, 0 = fixed disk
	AliasParentIDOffset    = 0x2E // ULONG, CNID of the target's directory
	AliasFileNameOffset    = 0x32 // Pascal string, length byte + 63
	AliasFileIDOffset      = 0x72 // ULONG, target CNID, 0 = unresolved
	AliasFileDateOffset    = 0x76 // ULONG, target creation date, 0 here
	AliasTypeCodeOffset    = 0x7A // ULONG, target type code
	AliasCreatorCodeOffset = 0x7E // ULONG, target creator code
	AliasFromDirIDOffset   = 0x82 // USHORT, 0xFFFF = none
	AliasToDirIDOffset     = 0x84 // USHORT, 0xFFFF = none
	AliasVolumeAttrsOffset = 0x86 // ULONG
	AliasVolumeFSIDOffset  = 0x8A // USHORT
	AliasReservedOffset    = 0x8C // 10 zero bytes
	AliasTrailerOffset     = 0x96 // extra-info items start here
)

// derived capacities.
const (
	AliasHeaderSize   = AliasTrailerOffset                                // 0x96 (150 bytes)
	AliasVolumeMaxLen = AliasVolumeDateOffset - AliasVolumeNameOffset - 1 // 27
	AliasFileMaxLen   = AliasFileIDOffset - AliasFileNameOffset - 1       // 63
)

// fixed field values.
const (
	AliasVersion           = 2
	AliasVolumeSigHFSPlus  = 0x482B // 'H' '+'
	AliasRootDirectoryID   = 2      // CNID every volume root carries
	AliasNoDirectory       = 0xFFFF
	AliasTagAbsolutePath   = 2 // extra-info tag for an absolute path
	AliasTrailerTerminator = 0xFFFF

	// AliasTrailerFixedSize covers tag, path length, terminator, and two
	// slack bytes; the record size field is the header plus this plus the
	// even-padded path.
	AliasTrailerFixedSize = 8
)

// ============================================================================
// Finder Display Record Constants
// ============================================================================

// Background (BKGD) record, 12 bytes.
const (
	BackgroundTagOffset      = 0x00 // 4 bytes, "PctB" = picture background
	BackgroundAliasLenOffset = 0x04 // ULONG, byte length of the pict alias
	BackgroundPadOffset      = 0x08 // ULONG, zero
	BackgroundSize           = 12

	BackgroundPictureTag = "PctB"
)

// Window info (fwi0) record, 16 bytes.
const (
	WindowTopOffset    = 0x00 // USHORT
	WindowLeftOffset   = 0x02 // USHORT
	WindowBottomOffset = 0x04 // USHORT, top + content height
	WindowRightOffset  = 0x06 // USHORT, left + content width
	WindowViewOffset   = 0x08 // 4 bytes, view kind fourcc
	WindowPadOffset    = 0x0C // ULONG, zero
	WindowSize         = 16

	// Fixed top-left origin of forged windows, in screen points.
	WindowOriginTop  = 200
	WindowOriginLeft = 300

	WindowViewIcon = "icnv"
)

// Icon view options (icvo) record, 26 bytes in the "icv4" layout.
const (
	IconViewTagOffset     = 0x00 // 4 bytes, "icv4"
	IconViewSizeOffset    = 0x04 // USHORT, icon edge length in points
	IconViewArrangeOffset = 0x06 // 4 bytes, keep-arranged-by fourcc
	IconViewLabelOffset   = 0x0A // 4 bytes, label position fourcc
	IconViewPadOffset     = 0x0E // 12 zero bytes
	IconViewSize          = 26

	IconViewTag         = "icv4"
	IconViewArrangeNone = "none"
	IconViewLabelBottom = "botm"
)

// Icon location (Iloc) record, 16 bytes.
const (
	IconLocXOffset       = 0x00 // ULONG, horizontal center in points
	IconLocYOffset       = 0x04 // ULONG, vertical center in points
	IconLocUnknownOffset = 0x08 // three USHORT, always 0xFFFF
	IconLocPadOffset     = 0x0E // two zero bytes
	IconLocSize          = 16

	IconLocNone = 0xFFFF
)

// ============================================================================
// Resource Fork Constants
// ============================================================================

// Resource map field offsets, for a fork holding exactly one unnamed
// resource of one type. Offsets into the map itself; the map's first 16
// bytes double as the fork header.
const (
	MapDataOffOffset   = 0x00 // ULONG, offset of the data section, 0x100
	MapMapOffOffset    = 0x04 // ULONG, offset of the map itself
	MapDataLenOffset   = 0x08 // ULONG, data section length
	MapMapLenOffset    = 0x0C // ULONG, map length
	MapNextOffset      = 0x10 // ULONG, next map handle placeholder, 0
	MapFileRefOffset   = 0x14 // USHORT, file reference number
	MapAttrsOffset     = 0x16 // USHORT, fork attributes, 0
	MapTypeListOffset  = 0x18 // USHORT, offset of the type list from the map
	MapNameListOffset  = 0x1A // USHORT, offset of the name list from the map
	MapTypeCountOffset = 0x1C // USHORT, type count minus one
	MapTypeTagOffset   = 0x1E // 4 bytes, resource type fourcc
	MapResCountOffset  = 0x22 // USHORT, resource count minus one
	MapRefListOffset   = 0x24 // USHORT, reference list offset from the type list
	MapResIDOffset     = 0x26 // USHORT, resource id
	MapResNameOffset   = 0x28 // USHORT, name list offset, 0xFFFF = unnamed
	MapResDataOffset   = 0x2A // ULONG, attribute byte + 3-byte data offset, 0
	MapResHandleOffset = 0x2E // ULONG, handle placeholder
	MapSize            = 0x32 // 50 bytes
)

// fixed resource fork values.
const (
	// ForkDataStart leaves the classic reserved zone before resource data.
	ForkDataStart = 0x100

	// ForkHeaderCopy is how many leading map bytes double as the header.
	ForkHeaderCopy = 16

	ForkFileRef = 0xAA09

	// CustomIconResourceID is -16455 as an unsigned 16-bit value, the id
	// Finder looks up for a volume's custom icon.
	CustomIconResourceID = 0xBFB9

	ForkResourceHandle = 0xB0000000
	ForkNoName         = 0xFFFF

	ResourceTypeIconFamily = "icns"
)
