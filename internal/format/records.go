package format

// Encoders for the fixed-size Finder display records. Each returns a
// freshly allocated buffer of the record's exact wire size; callers hand
// the bytes to the entry tree as blob values. Numeric ranges are the
// caller's concern, the parameter types carry the wire widths.

// EncodeBackground builds the 12-byte BKGD record selecting a picture
// background. aliasLen is the byte length of the companion pict alias.
func EncodeBackground(aliasLen uint32) []byte {
	b := make([]byte, BackgroundSize)
	copy(b[BackgroundTagOffset:], BackgroundPictureTag)
	PutU32(b, BackgroundAliasLenOffset, aliasLen)
	return b
}

// EncodeWindow builds the 16-byte fwi0 record placing the Finder window.
// The window content spans width x height points below and right of the
// fixed origin, displayed in icon view.
func EncodeWindow(width, height uint16) []byte {
	b := make([]byte, WindowSize)
	PutU16(b, WindowTopOffset, WindowOriginTop)
	PutU16(b, WindowLeftOffset, WindowOriginLeft)
	PutU16(b, WindowBottomOffset, WindowOriginTop+height)
	PutU16(b, WindowRightOffset, WindowOriginLeft+width)
	copy(b[WindowViewOffset:], WindowViewIcon)
	return b
}

// EncodeIconView builds the 26-byte icvo record in the icv4 layout:
// icons of the given edge length, manually arranged, labels below.
func EncodeIconView(iconSize uint16) []byte {
	b := make([]byte, IconViewSize)
	copy(b[IconViewTagOffset:], IconViewTag)
	PutU16(b, IconViewSizeOffset, iconSize)
	copy(b[IconViewArrangeOffset:], IconViewArrangeNone)
	copy(b[IconViewLabelOffset:], IconViewLabelBottom)
	return b
}

// EncodeIconLocation builds the 16-byte Iloc record pinning one icon's
// center at (x, y) in window points.
func EncodeIconLocation(x, y uint32) []byte {
	b := make([]byte, IconLocSize)
	PutU32(b, IconLocXOffset, x)
	PutU32(b, IconLocYOffset, y)
	PutU16(b, IconLocUnknownOffset, IconLocNone)
	PutU16(b, IconLocUnknownOffset+2, IconLocNone)
	PutU16(b, IconLocUnknownOffset+4, IconLocNone)
	return b
}
