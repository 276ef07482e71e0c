package vdom

import (
	"strconv"
	"strings"
)

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindInvalid + 1; k < kindCount; k++ {
		m[kindTable[k].name] = k
	}
	return m
}()

// String returns the canonical lower-case tag name.
func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindTable[k].name
}

// Valid reports whether k names an entry of the element table.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// SelfClosing reports whether elements of this kind never carry children.
func (k Kind) SelfClosing() bool {
	return k.Valid() && kindTable[k].selfClosing
}

// Description returns a one-line English description of the element.
func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kindTable[k].description
}

// KindByName looks up an element kind by tag name, case-insensitively.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[strings.ToLower(name)]
	return k, ok
}

// Kinds returns every element kind in table order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

var attrKindsByName = func() map[string]AttrKind {
	m := make(map[string]AttrKind, attrKindCount)
	for k := AttrInvalid + 1; k < attrKindCount; k++ {
		m[attrKindTable[k].name] = k
	}
	return m
}()

// String returns the canonical attribute name.
func (k AttrKind) String() string {
	if !k.Valid() {
		return ""
	}
	return attrKindTable[k].name
}

// Valid reports whether k names an entry of the attribute table.
func (k AttrKind) Valid() bool {
	return k > AttrInvalid && k < attrKindCount
}

// BelongsTo lists the element kinds the attribute is meant for. An empty
// result means the attribute is global. The association is informational:
// construction never rejects an attribute because of it. See CheckPlacement.
func (k AttrKind) BelongsTo() []Kind {
	if !k.Valid() {
		return nil
	}
	return append([]Kind(nil), attrKindTable[k].belongsTo...)
}

// Description returns a one-line English description of the attribute.
func (k AttrKind) Description() string {
	if !k.Valid() {
		return ""
	}
	return attrKindTable[k].description
}

// AttrKindByName looks up an attribute kind by name, case-insensitively.
func AttrKindByName(name string) (AttrKind, bool) {
	k, ok := attrKindsByName[strings.ToLower(name)]
	return k, ok
}

// AttrKinds returns every attribute kind in table order.
func AttrKinds() []AttrKind {
	out := make([]AttrKind, 0, attrKindCount-1)
	for k := AttrInvalid + 1; k < attrKindCount; k++ {
		out = append(out, k)
	}
	return out
}
