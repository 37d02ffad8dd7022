// Package proptag implements the MAPI property tag model.
//
// A property tag packs a 16-bit property ID and a 16-bit property type into a
// single 32-bit value:
//
//	31            16 15             0
//	+---------------+---------------+
//	|  PropertyID   | PropertyType  |
//	+---------------+---------------+
//
// # Validation
//
// PropertyType is a closed taxonomy. A raw value is only accepted as a PropTag
// if its type bits name a taxonomy member:
//
//	tag, err := proptag.FromRaw(0x3001001F) // PR_DISPLAY_NAME_W
//	if errors.Is(err, proptag.ErrInvalidPropertyType) {
//	    // reject before it reaches a native call
//	}
//
// Once constructed, a PropTag is always valid, so downstream code can branch
// on its type without re-checking.
//
// # Null vs Object
//
// Two type codes carry no ordinary scalar payload:
//   - PT_NULL: no value is present for the property
//   - PT_OBJECT: the value is a reference to a sub-object and must be opened,
//     not read
//
// IsNull and IsObject report these markers exactly and are never both true.
//
// # Well-known Tags
//
// The package embeds a catalog of common tags. Lookup resolves names such as
// "PR_SUBJECT_W" and NameOf performs the reverse mapping. The Tag* constants in
// tags_gen.go are generated from the same catalog by cmd/mapi-taggen.
package proptag
