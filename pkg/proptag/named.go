package proptag

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Property set GUIDs. These are opaque identifiers consumed as-is.
var (
	PSPublicStrings   = uuid.MustParse("00020329-0000-0000-C000-000000000046")
	PSMAPI            = uuid.MustParse("00020328-0000-0000-C000-000000000046")
	PSInternetHeaders = uuid.MustParse("00020386-0000-0000-C000-000000000046")
	PSETIDCommon      = uuid.MustParse("00062008-0000-0000-C000-000000000046")
	PSETIDAddress     = uuid.MustParse("00062004-0000-0000-C000-000000000046")
	PSETIDAppointment = uuid.MustParse("00062002-0000-0000-C000-000000000046")
	PSETIDTask        = uuid.MustParse("00062003-0000-0000-C000-000000000046")
)

// NameKind selects between numeric and string named properties.
type NameKind uint32

const (
	// NameKindID is MNID_ID: the property is named by a 32-bit LID.
	NameKindID NameKind = 0

	// NameKindString is MNID_STRING: the property is named by a string.
	NameKindString NameKind = 1
)

// String returns the kind name.
func (k NameKind) String() string {
	switch k {
	case NameKindID:
		return "MNID_ID"
	case NameKindString:
		return "MNID_STRING"
	default:
		return "UNKNOWN"
	}
}

// NamedProperty identifies a property by property set and name rather than by
// a fixed ID (the native MAPINAMEID).
type NamedProperty struct {
	Set  uuid.UUID
	Kind NameKind
	LID  uint32
	Name string
}

// Validate checks that exactly the field selected by Kind is populated.
func (n NamedProperty) Validate() error {
	if n.Set == uuid.Nil {
		return errors.New("named property: missing property set")
	}
	switch n.Kind {
	case NameKindID:
		if n.Name != "" {
			return errors.New("named property: MNID_ID with a string name")
		}
	case NameKindString:
		if n.Name == "" {
			return errors.New("named property: MNID_STRING without a name")
		}
		if n.LID != 0 {
			return errors.New("named property: MNID_STRING with a LID")
		}
	default:
		return fmt.Errorf("named property: unknown kind %d", n.Kind)
	}
	return nil
}

// String returns "{set}:0xLID" or "{set}:name".
func (n NamedProperty) String() string {
	if n.Kind == NameKindString {
		return fmt.Sprintf("{%s}:%s", n.Set, n.Name)
	}
	return fmt.Sprintf("{%s}:0x%04X", n.Set, n.LID)
}

// NameMap caches the IDs a store assigned to named properties. It is safe for
// concurrent use.
type NameMap struct {
	mu     sync.RWMutex
	byName map[NamedProperty]PropertyID
	byID   map[PropertyID]NamedProperty
}

// NewNameMap creates an empty NameMap.
func NewNameMap() *NameMap {
	return &NameMap{
		byName: make(map[NamedProperty]PropertyID),
		byID:   make(map[PropertyID]NamedProperty),
	}
}

// Bind records that np resolved to id. The ID must be in the named range,
// and neither side may already be bound to something else. Rebinding the
// same pair is a no-op.
func (m *NameMap) Bind(np NamedProperty, id PropertyID) error {
	if err := np.Validate(); err != nil {
		return err
	}
	if !id.IsNamed() {
		return fmt.Errorf("%w: 0x%04X", ErrNotNamedRange, uint16(id))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byName[np]; ok {
		if existing == id {
			return nil
		}
		return fmt.Errorf("%w: %s is 0x%04X", ErrNameConflict, np, uint16(existing))
	}
	if existing, ok := m.byID[id]; ok {
		return fmt.Errorf("%w: 0x%04X is %s", ErrNameConflict, uint16(id), existing)
	}
	m.byName[np] = id
	m.byID[id] = np
	return nil
}

// ID returns the bound ID for np.
func (m *NameMap) ID(np NamedProperty) (PropertyID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byName[np]
	return id, ok
}

// Name returns the named property bound to id.
func (m *NameMap) Name(id PropertyID) (NamedProperty, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	np, ok := m.byID[id]
	return np, ok
}

// Tag builds a tag for a bound named property.
func (m *NameMap) Tag(np NamedProperty, t PropertyType) (PropTag, bool) {
	id, ok := m.ID(np)
	if !ok {
		return 0, false
	}
	return FromParts(id, t), true
}

// Len returns the number of bindings.
func (m *NameMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byName)
}
