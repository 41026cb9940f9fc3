package dsstore

import (
	"errors"

	"github.com/dmgtools/dsforge/internal/format"
)

var (
	// ErrLayout indicates a Layout field outside its representable range.
	ErrLayout = errors.New("dsstore: invalid layout")

	// ErrNameTooLong reports a volume or file name overflowing the fixed
	// fields of the background alias record.
	ErrNameTooLong = format.ErrNameTooLong

	// ErrBadName reports a name that cannot be stored as an entry key.
	ErrBadName = format.ErrBadName
)
