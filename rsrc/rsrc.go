// Package rsrc forges classic resource forks.
//
// A fork produced here carries exactly one unnamed resource of type
// "icns", the shape Finder expects when a volume's custom icon lives in
// the resource fork of a .VolumeIcon.icns file. The layout is the
// classic Resource Manager one: a 16-byte header, a reserved zone up to
// 0x100, the data section, then the resource map. The map's first 16
// bytes double as the fork header, so the two stay in sync by
// construction.
package rsrc

import (
	"github.com/dmgtools/dsforge/internal/buf"
	"github.com/dmgtools/dsforge/internal/format"
)

// Wrap frames payload as a single-resource fork of type "icns".
//
// Wrap never fails. An empty payload still produces a well-formed fork;
// whether Finder draws anything useful from it is the caller's problem.
func Wrap(payload []byte) []byte {
	m := resourceMap(uint32(len(payload)))

	out := buf.New(0)
	out.WriteBytes(m[:format.ForkHeaderCopy])
	out.Seek(format.ForkDataStart)
	out.WriteU32(uint32(len(payload)))
	out.WriteBytes(payload)
	out.WriteBytes(m)
	return out.Bytes()
}

// resourceMap lays out the 50-byte map for one unnamed icns resource.
// The data-section length counts the 4-byte length word ahead of the
// payload. Fields whose value is zero (next map handle, attributes,
// both minus-one counts, the reference's attribute and offset word)
// ride on the zero fill.
func resourceMap(payloadLen uint32) []byte {
	dataLen := payloadLen + 4

	m := make([]byte, format.MapSize)
	format.PutU32(m, format.MapDataOffOffset, format.ForkDataStart)
	format.PutU32(m, format.MapMapOffOffset, format.ForkDataStart+dataLen)
	format.PutU32(m, format.MapDataLenOffset, dataLen)
	format.PutU32(m, format.MapMapLenOffset, format.MapSize)
	format.PutU16(m, format.MapFileRefOffset, format.ForkFileRef)
	format.PutU16(m, format.MapTypeListOffset, format.MapTypeCountOffset)
	// No names are stored, so the name list collapses to the map's end.
	format.PutU16(m, format.MapNameListOffset, format.MapSize)
	copy(m[format.MapTypeTagOffset:], format.ResourceTypeIconFamily)
	format.PutU16(m, format.MapRefListOffset, format.MapResIDOffset-format.MapTypeCountOffset)
	format.PutU16(m, format.MapResIDOffset, format.CustomIconResourceID)
	format.PutU16(m, format.MapResNameOffset, format.ForkNoName)
	format.PutU32(m, format.MapResHandleOffset, format.ForkResourceHandle)
	return m
}
