package proptag

import (
	"fmt"
	"strconv"
	"strings"
)

// PropertyType is the 16-bit data type code carried in the low half of a tag.
type PropertyType uint16

const (
	// MVFlag marks a multi-valued (array) type.
	MVFlag PropertyType = 0x1000

	// MVInstance marks a multi-valued column expanded to one row per value
	// in a table. It is only meaningful together with MVFlag.
	MVInstance PropertyType = 0x2000
)

const (
	// TypeUnspecified requests a property in whatever type the provider
	// stores it. Used in requests, never in returned values.
	TypeUnspecified PropertyType = 0x0000

	// TypeNull indicates no value is present for the property.
	TypeNull PropertyType = 0x0001

	// TypeShort is a signed 16-bit integer (PT_I2).
	TypeShort PropertyType = 0x0002

	// TypeLong is a signed 32-bit integer (PT_I4).
	TypeLong PropertyType = 0x0003

	// TypeFloat is a 32-bit IEEE float (PT_R4).
	TypeFloat PropertyType = 0x0004

	// TypeDouble is a 64-bit IEEE float (PT_R8).
	TypeDouble PropertyType = 0x0005

	// TypeCurrency is a 64-bit scaled integer (CY).
	TypeCurrency PropertyType = 0x0006

	// TypeAppTime is an OLE automation date stored as a double.
	TypeAppTime PropertyType = 0x0007

	// TypeError is an SCODE returned in place of the requested value.
	TypeError PropertyType = 0x000A

	// TypeBoolean is a 16-bit boolean.
	TypeBoolean PropertyType = 0x000B

	// TypeObject indicates the value is a reference to a sub-object.
	TypeObject PropertyType = 0x000D

	// TypeLongLong is a signed 64-bit integer (PT_I8).
	TypeLongLong PropertyType = 0x0014

	// TypeString8 is a null-terminated 8-bit string in the code page of the
	// session.
	TypeString8 PropertyType = 0x001E

	// TypeUnicode is a null-terminated UTF-16 string.
	TypeUnicode PropertyType = 0x001F

	// TypeSysTime is a FILETIME.
	TypeSysTime PropertyType = 0x0040

	// TypeCLSID is a GUID.
	TypeCLSID PropertyType = 0x0048

	// TypeServerEntryID is a server-side entry identifier.
	TypeServerEntryID PropertyType = 0x00FB

	// TypeRestriction is a serialized SRestriction.
	TypeRestriction PropertyType = 0x00FD

	// TypeRuleActions is a serialized rule action list.
	TypeRuleActions PropertyType = 0x00FE

	// TypeBinary is a counted byte array.
	TypeBinary PropertyType = 0x0102

	// TypePtr is a pointer-sized value (also PT_FILE_HANDLE).
	TypePtr PropertyType = 0x0103
)

// Multi-valued types.
const (
	TypeMVShort    = MVFlag | TypeShort
	TypeMVLong     = MVFlag | TypeLong
	TypeMVFloat    = MVFlag | TypeFloat
	TypeMVDouble   = MVFlag | TypeDouble
	TypeMVCurrency = MVFlag | TypeCurrency
	TypeMVAppTime  = MVFlag | TypeAppTime
	TypeMVLongLong = MVFlag | TypeLongLong
	TypeMVString8  = MVFlag | TypeString8
	TypeMVUnicode  = MVFlag | TypeUnicode
	TypeMVSysTime  = MVFlag | TypeSysTime
	TypeMVCLSID    = MVFlag | TypeCLSID
	TypeMVBinary   = MVFlag | TypeBinary
)

// types lists every taxonomy member (without instance variants) in code order.
var types = []PropertyType{
	TypeUnspecified,
	TypeNull,
	TypeShort,
	TypeLong,
	TypeFloat,
	TypeDouble,
	TypeCurrency,
	TypeAppTime,
	TypeError,
	TypeBoolean,
	TypeObject,
	TypeLongLong,
	TypeString8,
	TypeUnicode,
	TypeSysTime,
	TypeCLSID,
	TypeServerEntryID,
	TypeRestriction,
	TypeRuleActions,
	TypeBinary,
	TypePtr,
	TypeMVShort,
	TypeMVLong,
	TypeMVFloat,
	TypeMVDouble,
	TypeMVCurrency,
	TypeMVAppTime,
	TypeMVLongLong,
	TypeMVString8,
	TypeMVUnicode,
	TypeMVSysTime,
	TypeMVCLSID,
	TypeMVBinary,
}

// Types returns every taxonomy member in ascending code order. Instance
// variants (MVInstance set) are valid but not listed.
func Types() []PropertyType {
	out := make([]PropertyType, len(types))
	copy(out, types)
	return out
}

// Valid returns true if the code is a member of the type taxonomy.
func (t PropertyType) Valid() bool {
	if t&MVInstance != 0 {
		base := t &^ MVInstance
		return base&MVFlag != 0 && base.Valid()
	}
	switch t {
	case TypeUnspecified, TypeNull, TypeShort, TypeLong, TypeFloat, TypeDouble,
		TypeCurrency, TypeAppTime, TypeError, TypeBoolean, TypeObject,
		TypeLongLong, TypeString8, TypeUnicode, TypeSysTime, TypeCLSID,
		TypeServerEntryID, TypeRestriction, TypeRuleActions, TypeBinary, TypePtr,
		TypeMVShort, TypeMVLong, TypeMVFloat, TypeMVDouble, TypeMVCurrency,
		TypeMVAppTime, TypeMVLongLong, TypeMVString8, TypeMVUnicode,
		TypeMVSysTime, TypeMVCLSID, TypeMVBinary:
		return true
	default:
		return false
	}
}

// IsNull returns true for the absence-of-value marker.
func (t PropertyType) IsNull() bool {
	return t == TypeNull
}

// IsObject returns true for the object-reference marker.
func (t PropertyType) IsObject() bool {
	return t == TypeObject
}

// IsMultiValued returns true if the MV flag is set.
func (t PropertyType) IsMultiValued() bool {
	return t&MVFlag != 0
}

// IsInstance returns true if the MV instance flag is set.
func (t PropertyType) IsInstance() bool {
	return t&MVInstance != 0
}

// Base strips the MV and instance flags, returning the element type.
func (t PropertyType) Base() PropertyType {
	return t &^ (MVFlag | MVInstance)
}

// MultiValued returns the array form of a scalar type. The second result is
// false if the taxonomy has no array form for t.
func (t PropertyType) MultiValued() (PropertyType, bool) {
	mv := MVFlag | t.Base()
	if t.IsInstance() || !mv.Valid() {
		return 0, false
	}
	return mv, true
}

// Instance returns the table-instance form of a multi-valued type.
func (t PropertyType) Instance() (PropertyType, bool) {
	inst := t | MVInstance
	if !t.IsMultiValued() || !inst.Valid() {
		return 0, false
	}
	return inst, true
}

// String returns the native type name, e.g. "PT_UNICODE" or "PT_MV_LONG".
func (t PropertyType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("UNKNOWN(0x%04X)", uint16(t))
	}
	name := baseName(t.Base())
	switch {
	case t.IsInstance():
		return "PT_MV_" + name + "|MV_INSTANCE"
	case t.IsMultiValued():
		return "PT_MV_" + name
	default:
		return "PT_" + name
	}
}

func baseName(t PropertyType) string {
	switch t {
	case TypeUnspecified:
		return "UNSPECIFIED"
	case TypeNull:
		return "NULL"
	case TypeShort:
		return "SHORT"
	case TypeLong:
		return "LONG"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	case TypeCurrency:
		return "CURRENCY"
	case TypeAppTime:
		return "APPTIME"
	case TypeError:
		return "ERROR"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeObject:
		return "OBJECT"
	case TypeLongLong:
		return "LONGLONG"
	case TypeString8:
		return "STRING8"
	case TypeUnicode:
		return "UNICODE"
	case TypeSysTime:
		return "SYSTIME"
	case TypeCLSID:
		return "CLSID"
	case TypeServerEntryID:
		return "SVREID"
	case TypeRestriction:
		return "SRESTRICTION"
	case TypeRuleActions:
		return "ACTIONS"
	case TypeBinary:
		return "BINARY"
	case TypePtr:
		return "PTR"
	default:
		return "UNKNOWN"
	}
}

// typeAliases maps the alternate header names onto the canonical base names.
var typeAliases = map[string]string{
	"I2":          "SHORT",
	"I4":          "LONG",
	"R4":          "FLOAT",
	"R8":          "DOUBLE",
	"I8":          "LONGLONG",
	"CY":          "CURRENCY",
	"FILE_HANDLE": "PTR",
}

// ParsePropertyType parses a type name ("PT_UNICODE", "mv_long", "I4") or a
// numeric code ("0x001F", "31"). Codes outside the taxonomy are rejected.
func ParsePropertyType(s string) (PropertyType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty type", ErrInvalidPropertyType)
	}

	if v, err := strconv.ParseUint(s, 0, 16); err == nil {
		t := PropertyType(v)
		if !t.Valid() {
			return 0, &InvalidPropertyTypeError{Raw: uint32(v), Code: t}
		}
		return t, nil
	}

	name := strings.TrimPrefix(strings.ToUpper(s), "PT_")
	var flags PropertyType
	if strings.HasSuffix(name, "|MV_INSTANCE") {
		name = strings.TrimSuffix(name, "|MV_INSTANCE")
		flags |= MVInstance
	}
	if strings.HasPrefix(name, "MV_") {
		name = strings.TrimPrefix(name, "MV_")
		flags |= MVFlag
	}
	if alias, ok := typeAliases[name]; ok {
		name = alias
	}

	for _, t := range types {
		if t.IsMultiValued() || baseName(t) != name {
			continue
		}
		candidate := t | flags
		if candidate.Valid() {
			return candidate, nil
		}
		break
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPropertyType, s)
}
