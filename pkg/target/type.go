// Package target models the program image a debugging session runs against:
// a table of C types, a table of symbols, and byte-addressable memory. The
// image either comes from a YAML file or from a remote serving process.
//
// The model is deliberately small. It is not a DWARF reader; it knows just
// enough about C's type system to cast, dereference and format the objects
// that flow through a pipeline.
package target

import (
	"fmt"
	"strings"
)

// Kind enumerates the kinds of types in an image.
type Kind int

const (
	KindVoid Kind = iota
	KindInt
	KindPointer
	KindStruct
	KindUnion
	KindArray
	KindTypedef
	KindFunction
)

// Type describes a C type. Named types (ints, structs, unions, typedefs and
// functions) carry their spelled name; pointers and arrays are derived and
// compute their name from the element type.
type Type struct {
	Kind    Kind
	Name    string
	Size    uint64
	Signed  bool
	Elem    *Type // pointee, array element, or typedef target
	Len     uint64
	Members []Member
}

// Member is a named member of a struct or union, at a byte offset from the
// start of the enclosing type.
type Member struct {
	Name   string
	Type   *Type
	Offset uint64
}

// PointerTo returns the type of a pointer to elem. Pointers are 8 bytes wide;
// the targets this debugger handles are all LP64.
func PointerTo(elem *Type) *Type {
	return &Type{Kind: KindPointer, Size: 8, Elem: elem}
}

// ArrayOf returns the type of an array of n elements of elem.
func ArrayOf(elem *Type, n uint64) *Type {
	return &Type{Kind: KindArray, Size: elem.Size * n, Elem: elem, Len: n}
}

// String returns the C spelling of the type, e.g. "struct spa *" or
// "char [256]".
func (t *Type) String() string {
	switch t.Kind {
	case KindPointer:
		return PointerName(t.Elem.String())
	case KindArray:
		return arrayName(t.Elem.String(), t.Len)
	default:
		return t.Name
	}
}

// PointerName returns the C spelling of a pointer to the named type.
func PointerName(base string) string {
	if strings.HasSuffix(base, "*") {
		return base + "*"
	}
	return base + " *"
}

func arrayName(base string, n uint64) string {
	// "int [2]" of "int [3]" is spelled "int [2][3]".
	if i := strings.Index(base, " ["); i >= 0 {
		return fmt.Sprintf("%s [%d]%s", base[:i], n, base[i+1:])
	}
	return fmt.Sprintf("%s [%d]", base, n)
}

// Canonical resolves typedefs, both at the top level and through pointer and
// array derivations, so that "spa_t *" and "struct spa *" canonicalize to the
// same type.
func (t *Type) Canonical() *Type {
	for t.Kind == KindTypedef {
		t = t.Elem
	}
	switch t.Kind {
	case KindPointer:
		elem := t.Elem.Canonical()
		if elem == t.Elem {
			return t
		}
		return PointerTo(elem)
	case KindArray:
		elem := t.Elem.Canonical()
		if elem == t.Elem {
			return t
		}
		return ArrayOf(elem, t.Len)
	}
	return t
}

// CanonicalName returns the C spelling of the canonicalized type. Two types
// are considered the same type exactly when their canonical names are equal.
func (t *Type) CanonicalName() string {
	return t.Canonical().String()
}

// Member looks up a member by name in a struct or union type.
func (t *Type) Member(name string) (*Member, bool) {
	for i := range t.Members {
		if t.Members[i].Name == name {
			return &t.Members[i], true
		}
	}
	return nil, false
}

// Definition returns the C definition of the type: struct and union types
// list their members, typedefs name their target. Other types are spelled as
// in String.
func (t *Type) Definition() string {
	switch t.Kind {
	case KindStruct, KindUnion:
		var sb strings.Builder
		sb.WriteString(t.Name)
		sb.WriteString(" {\n")
		for _, m := range t.Members {
			sb.WriteString("        ")
			sb.WriteString(declString(m.Type, m.Name))
			sb.WriteString(";\n")
		}
		sb.WriteString("}")
		return sb.String()
	case KindTypedef:
		return "typedef " + declString(t.Elem, t.Name)
	default:
		return t.String()
	}
}

// declString renders a C declaration of the given type for the given name,
// using the inside-out declarator rules, so that an array of two ints is
// "int name[2]" and a pointer to it is "int (*name)[2]".
func declString(t *Type, name string) string {
	switch t.Kind {
	case KindPointer:
		return declString(t.Elem, "*"+name)
	case KindArray:
		if strings.HasPrefix(name, "*") {
			name = "(" + name + ")"
		}
		return declString(t.Elem, fmt.Sprintf("%s[%d]", name, t.Len))
	default:
		if name == "" {
			return t.String()
		}
		return t.String() + " " + name
	}
}
