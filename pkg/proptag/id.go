package proptag

// PropertyID names a property within its namespace (high 16 bits of a tag).
type PropertyID uint16

const (
	// IDNull is PROP_ID_NULL, used as a placeholder in tag arrays.
	IDNull PropertyID = 0x0000

	// NamedBase is the first ID in the range mapped to named properties.
	NamedBase PropertyID = 0x8000

	// IDInvalid is PROP_ID_INVALID.
	IDInvalid PropertyID = 0xFFFF
)

// IDRange classifies a property ID by the range it falls in.
type IDRange uint8

const (
	// RangeNull is the single null ID.
	RangeNull IDRange = 0

	// RangeWellKnown covers IDs defined by MAPI and providers (0x0001-0x7FFF).
	RangeWellKnown IDRange = 1

	// RangeNamed covers IDs assigned per store to named properties
	// (0x8000-0xFFFE).
	RangeNamed IDRange = 2

	// RangeInvalid is the single invalid ID.
	RangeInvalid IDRange = 3
)

// String returns the range name.
func (r IDRange) String() string {
	switch r {
	case RangeNull:
		return "NULL"
	case RangeWellKnown:
		return "WELL_KNOWN"
	case RangeNamed:
		return "NAMED"
	case RangeInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Range returns the range the ID belongs to.
func (id PropertyID) Range() IDRange {
	switch {
	case id == IDNull:
		return RangeNull
	case id == IDInvalid:
		return RangeInvalid
	case id >= NamedBase:
		return RangeNamed
	default:
		return RangeWellKnown
	}
}

// IsNamed returns true if the ID is in the named property range.
func (id PropertyID) IsNamed() bool {
	return id.Range() == RangeNamed
}
