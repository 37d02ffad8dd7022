package proptag

import (
	"errors"
	"fmt"
)

// Errors returned by the property tag model.
var (
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrUnknownTagName      = errors.New("unknown property tag name")
	ErrShortBuffer         = errors.New("buffer too short")
	ErrTooManyCategories   = errors.New("sort categories exceed sort orders")
	ErrTooManyExpanded     = errors.New("expanded categories exceed categories")
	ErrNotNamedRange       = errors.New("property ID outside named range")
	ErrNameConflict        = errors.New("named property already bound")
)

// InvalidPropertyTypeError reports a raw tag whose type bits are not a
// member of the type taxonomy.
type InvalidPropertyTypeError struct {
	// Raw is the rejected 32-bit value.
	Raw uint32

	// Code is the unrecognized type code (low 16 bits of Raw).
	Code PropertyType
}

func (e *InvalidPropertyTypeError) Error() string {
	return fmt.Sprintf("%v: type 0x%04X in tag 0x%08X", ErrInvalidPropertyType, uint16(e.Code), e.Raw)
}

// Unwrap allows errors.Is(err, ErrInvalidPropertyType).
func (e *InvalidPropertyTypeError) Unwrap() error {
	return ErrInvalidPropertyType
}
