package proptag

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// PropTag is a packed MAPI property tag. It has the same layout as the
// native ULONG and can be passed to native calls as-is.
//
// A PropTag obtained from FromRaw, FromParts or Parse always carries a valid
// type. Converting an arbitrary uint32 with PropTag(v) bypasses validation
// and should be limited to constants already known to be valid.
type PropTag uint32

// FromRaw validates a raw 32-bit tag. It fails with an error matching
// ErrInvalidPropertyType if the low 16 bits are not a taxonomy member.
func FromRaw(v uint32) (PropTag, error) {
	t := PropertyType(v & 0xFFFF)
	if !t.Valid() {
		return 0, &InvalidPropertyTypeError{Raw: v, Code: t}
	}
	return PropTag(v), nil
}

// MustFromRaw is like FromRaw but panics on an invalid type. Intended for
// package-level tables of constants.
func MustFromRaw(v uint32) PropTag {
	tag, err := FromRaw(v)
	if err != nil {
		panic(err)
	}
	return tag
}

// FromParts combines an ID and a type. The type must be one of the
// PropertyType constants; passing an unchecked code panics.
func FromParts(id PropertyID, t PropertyType) PropTag {
	if !t.Valid() {
		panic(fmt.Sprintf("proptag: FromParts with non-taxonomy type 0x%04X", uint16(t)))
	}
	return PropTag(uint32(id)<<16 | uint32(t))
}

// ID returns the property ID (high 16 bits).
func (p PropTag) ID() PropertyID {
	return PropertyID(uint32(p) >> 16)
}

// Type returns the property type (low 16 bits).
func (p PropTag) Type() PropertyType {
	return PropertyType(uint32(p) & 0xFFFF)
}

// Raw returns the packed 32-bit value.
func (p PropTag) Raw() uint32 {
	return uint32(p)
}

// IsNull returns true if the tag carries the absence-of-value type.
func (p PropTag) IsNull() bool {
	return p.Type().IsNull()
}

// IsObject returns true if the tag carries the object-reference type.
func (p PropTag) IsObject() bool {
	return p.Type().IsObject()
}

// WithType returns a tag with the same ID and a different type, e.g. to
// build the PT_ERROR form of a tag.
func (p PropTag) WithType(t PropertyType) PropTag {
	return FromParts(p.ID(), t)
}

// Compare orders tags by their raw value.
func (p PropTag) Compare(other PropTag) int {
	return cmp.Compare(uint32(p), uint32(other))
}

// Less reports whether p sorts before other.
func (p PropTag) Less(other PropTag) bool {
	return p < other
}

// Hex returns the tag as "0xIIIITTTT".
func (p PropTag) Hex() string {
	return fmt.Sprintf("0x%08X", uint32(p))
}

// String returns the catalog name if the tag is well known, otherwise the
// hex form.
func (p PropTag) String() string {
	if name, ok := NameOf(p); ok {
		return name
	}
	return p.Hex()
}

// MarshalText encodes the tag in hex form.
func (p PropTag) MarshalText() ([]byte, error) {
	return []byte(p.Hex()), nil
}

// UnmarshalText decodes a tag in any form accepted by Parse.
func (p *PropTag) UnmarshalText(text []byte) error {
	tag, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = tag
	return nil
}

// Parse accepts a numeric tag ("0x3001001F", "805371935") or a catalog name
// ("PR_DISPLAY_NAME_W"). The result is validated with FromRaw.
func Parse(s string) (PropTag, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return FromRaw(uint32(v))
	}
	if tag, ok := Lookup(s); ok {
		return tag, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTagName, s)
}
