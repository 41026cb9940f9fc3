package format

import "errors"

var (
	// ErrNameTooLong indicates a name overflowed its fixed Pascal field.
	ErrNameTooLong = errors.New("format: name too long")
	// ErrBadTypeTag indicates a record type or kind was not four bytes.
	ErrBadTypeTag = errors.New("format: type tag must be four bytes")
	// ErrBadName indicates a name that cannot be represented on the wire.
	ErrBadName = errors.New("format: unrepresentable name")
)
