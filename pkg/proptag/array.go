package proptag

import (
	"encoding/binary"
	"fmt"
)

// TagArray is a list of tags with the native SPropTagArray layout when
// marshaled: a little-endian ULONG count followed by the tags.
type TagArray []PropTag

// MarshalBinary encodes the array in SPropTagArray layout.
func (a TagArray) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 4+4*len(a))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(a)))
	for _, tag := range a {
		buf = binary.LittleEndian.AppendUint32(buf, tag.Raw())
	}
	return buf, nil
}

// UnmarshalTagArray decodes an SPropTagArray. Each tag is validated; the
// first invalid one aborts decoding.
func UnmarshalTagArray(data []byte) (TagArray, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: tag array header", ErrShortBuffer)
	}
	count := binary.LittleEndian.Uint32(data)
	body := data[4:]
	if uint64(len(body)) < uint64(count)*4 {
		return nil, fmt.Errorf("%w: %d tags need %d bytes, have %d", ErrShortBuffer, count, uint64(count)*4, len(body))
	}

	out := make(TagArray, 0, count)
	for i := uint32(0); i < count; i++ {
		tag, err := FromRaw(binary.LittleEndian.Uint32(body[4*i:]))
		if err != nil {
			return nil, fmt.Errorf("tag %d: %w", i, err)
		}
		out = append(out, tag)
	}
	return out, nil
}

// Contains reports whether tag is in the array.
func (a TagArray) Contains(tag PropTag) bool {
	for _, t := range a {
		if t == tag {
			return true
		}
	}
	return false
}

// SortDirection is the ulOrder field of an SSortOrder.
type SortDirection uint32

const (
	// SortAscend is TABLE_SORT_ASCEND.
	SortAscend SortDirection = 0x00000000

	// SortDescend is TABLE_SORT_DESCEND.
	SortDescend SortDirection = 0x00000001

	// SortCombine is TABLE_SORT_COMBINE.
	SortCombine SortDirection = 0x00000002
)

// String returns the sort direction name.
func (d SortDirection) String() string {
	switch d {
	case SortAscend:
		return "ASCEND"
	case SortDescend:
		return "DESCEND"
	case SortCombine:
		return "COMBINE"
	default:
		return "UNKNOWN"
	}
}

// SortOrder sorts a table on a single column.
type SortOrder struct {
	Tag   PropTag
	Order SortDirection
}

// SortOrderSet is the native SSortOrderSet: a list of sort orders of which
// the first Categories are grouping columns and the first Expanded of those
// start expanded.
type SortOrderSet struct {
	Categories uint32
	Expanded   uint32
	Orders     []SortOrder
}

// Validate checks the category counts against the number of sort orders.
func (s SortOrderSet) Validate() error {
	if uint64(s.Categories) > uint64(len(s.Orders)) {
		return fmt.Errorf("%w: %d categories, %d sorts", ErrTooManyCategories, s.Categories, len(s.Orders))
	}
	if s.Expanded > s.Categories {
		return fmt.Errorf("%w: %d expanded, %d categories", ErrTooManyExpanded, s.Expanded, s.Categories)
	}
	return nil
}

// MarshalBinary validates the set and encodes it in SSortOrderSet layout.
func (s SortOrderSet) MarshalBinary() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 12+8*len(s.Orders))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.Orders)))
	buf = binary.LittleEndian.AppendUint32(buf, s.Categories)
	buf = binary.LittleEndian.AppendUint32(buf, s.Expanded)
	for _, o := range s.Orders {
		buf = binary.LittleEndian.AppendUint32(buf, o.Tag.Raw())
		buf = binary.LittleEndian.AppendUint32(buf, uint32(o.Order))
	}
	return buf, nil
}
