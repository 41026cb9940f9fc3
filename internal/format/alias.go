package format

import "fmt"

// EncodeAlias builds the classic alias record Finder follows to the folder
// background image. The target is addressed purely by name, volume plus
// file, with every identifier and date left for the reader to resolve.
//
// The record is the 150-byte fixed header followed by one absolute-path
// extra-info item:
//
//	USHORT  tag, 2 = absolute path
//	USHORT  path length, rounded up to even
//	bytes   "volume:file", zero padded to even length
//	USHORT  0xFFFF terminator
//	2 bytes slack
//
// Names that overflow their Pascal fields (27 bytes for the volume, 63
// for the file) are rejected.
func EncodeAlias(volume, file string) ([]byte, error) {
	if len(volume) > AliasVolumeMaxLen {
		return nil, fmt.Errorf("volume name %q: %w", volume, ErrNameTooLong)
	}
	if len(file) > AliasFileMaxLen {
		return nil, fmt.Errorf("file name %q: %w", file, ErrNameTooLong)
	}

	path := volume + ":" + file
	evenPath := len(path) + len(path)%2
	size := AliasHeaderSize + AliasTrailerFixedSize + evenPath

	b := make([]byte, size)

	// Fixed header. Unset fields stay zero: creator code, dates, drive
	// type, file id, type and creator codes, volume attributes and
	// filesystem id, and the reserved tail.
	PutU16(b, AliasRecordSizeOffset, uint16(size))
	PutU16(b, AliasVersionOffset, AliasVersion)
	putPascal(b, AliasVolumeNameOffset, volume)
	PutU16(b, AliasVolumeSigOffset, AliasVolumeSigHFSPlus)
	PutU32(b, AliasParentIDOffset, AliasRootDirectoryID)
	putPascal(b, AliasFileNameOffset, file)
	PutU16(b, AliasFromDirIDOffset, AliasNoDirectory)
	PutU16(b, AliasToDirIDOffset, AliasNoDirectory)

	// Absolute-path trailer. The odd-length pad byte, when present, is
	// already zero.
	PutU16(b, AliasTrailerOffset, AliasTagAbsolutePath)
	PutU16(b, AliasTrailerOffset+2, uint16(evenPath))
	copy(b[AliasTrailerOffset+4:], path)
	PutU16(b, AliasTrailerOffset+4+evenPath, AliasTrailerTerminator)

	return b, nil
}

// putPascal writes a classic length-prefixed string at off. Callers have
// already checked the name fits its field.
func putPascal(b []byte, off int, s string) {
	b[off] = byte(len(s))
	copy(b[off+1:], s)
}
