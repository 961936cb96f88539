package target

import (
	"encoding/binary"
	"fmt"
)

// Object is a typed datum in the target. A reference object lives at an
// address in target memory; a value object carries its bits directly and has
// no address. Value objects are always of integer or pointer type.
type Object struct {
	t    *Target
	typ  *Type
	ref  bool
	addr uint64
	val  uint64
}

// Value constructs a value object of the given type holding the given bits.
// The type must canonicalize to an integer or pointer type.
func (t *Target) Value(typ *Type, val uint64) Object {
	return Object{t: t, typ: typ, val: truncate(val, typ.Canonical().Size)}
}

// Ref constructs a reference object of the given type at the given address.
func (t *Target) Ref(typ *Type, addr uint64) Object {
	return Object{t: t, typ: typ, ref: true, addr: addr}
}

// Type returns the declared type of the object.
func (o Object) Type() *Type { return o.typ }

// Target returns the target the object belongs to.
func (o Object) Target() *Target { return o.t }

// Address returns the address of a reference object. The second return is
// false for value objects, which have no address.
func (o Object) Address() (uint64, bool) { return o.addr, o.ref }

func truncate(val uint64, size uint64) uint64 {
	if size == 0 || size >= 8 {
		return val
	}
	return val & (1<<(8*size) - 1)
}

// Uint64 returns the bits of an integer or pointer object, zero extended.
// Reference objects are read from target memory.
func (o Object) Uint64() (uint64, error) {
	c := o.typ.Canonical()
	switch c.Kind {
	case KindInt, KindPointer:
	default:
		return 0, fmt.Errorf("'%s' is not an integer or pointer type", o.typ)
	}
	if !o.ref {
		return o.val, nil
	}
	size := c.Size
	if size == 0 || size > 8 {
		return 0, fmt.Errorf("cannot read '%s' of size %d", o.typ, size)
	}
	buf := make([]byte, 8)
	if err := o.t.readMemory(o.addr, buf[:size]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// Int64 returns the value of an integer object, sign extended when the type
// is signed.
func (o Object) Int64() (int64, error) {
	v, err := o.Uint64()
	if err != nil {
		return 0, err
	}
	c := o.typ.Canonical()
	if c.Kind == KindInt && c.Signed && c.Size > 0 && c.Size < 8 {
		shift := 64 - 8*c.Size
		return int64(v<<shift) >> shift, nil
	}
	return int64(v), nil
}

// Cast converts the object to another integer or pointer type, returning a
// value object with the bits truncated to the new type's size.
func (o Object) Cast(typ *Type) (Object, error) {
	c := typ.Canonical()
	switch c.Kind {
	case KindInt, KindPointer:
	default:
		return Object{}, fmt.Errorf("cannot convert '%s' to '%s'", o.typ, typ)
	}
	v, err := o.Uint64()
	if err != nil {
		return Object{}, fmt.Errorf("cannot convert '%s' to '%s'", o.typ, typ)
	}
	return o.t.Value(typ, v), nil
}

// AddressOf returns a pointer value object holding the address of a
// reference object.
func (o Object) AddressOf() (Object, error) {
	if !o.ref {
		return Object{}, fmt.Errorf("cannot take address of value of type '%s'", o.typ)
	}
	return o.t.Value(PointerTo(o.typ), o.addr), nil
}

// Deref dereferences a pointer object, returning a reference object of the
// pointee type at the pointed-to address.
func (o Object) Deref() (Object, error) {
	c := o.typ.Canonical()
	if c.Kind != KindPointer {
		return Object{}, fmt.Errorf("cannot dereference '%s'", o.typ)
	}
	if c.Elem.Kind == KindVoid {
		return Object{}, fmt.Errorf("cannot dereference '%s'", o.typ)
	}
	addr, err := o.Uint64()
	if err != nil {
		return Object{}, err
	}
	return o.t.Ref(c.Elem, addr), nil
}

// Member accesses a member of a struct or union object. Pointers to structs
// are dereferenced first, mirroring C's arrow operator.
func (o Object) Member(name string) (Object, error) {
	c := o.typ.Canonical()
	base := c
	addr := o.addr
	if c.Kind == KindPointer {
		base = c.Elem.Canonical()
		v, err := o.Uint64()
		if err != nil {
			return Object{}, err
		}
		addr = v
	} else if !o.ref {
		return Object{}, fmt.Errorf("cannot access member of value of type '%s'", o.typ)
	}
	if base.Kind != KindStruct && base.Kind != KindUnion {
		return Object{}, fmt.Errorf("'%s' is not a structure or union", o.typ)
	}
	m, ok := base.Member(name)
	if !ok {
		return Object{}, fmt.Errorf("'%s' has no member '%s'", base, name)
	}
	return o.t.Ref(m.Type, addr+m.Offset), nil
}

// Index accesses element i of an array or pointer object.
func (o Object) Index(i uint64) (Object, error) {
	c := o.typ.Canonical()
	switch c.Kind {
	case KindArray:
		if !o.ref {
			return Object{}, fmt.Errorf("cannot index value of type '%s'", o.typ)
		}
		return o.t.Ref(c.Elem, o.addr+i*c.Elem.Size), nil
	case KindPointer:
		addr, err := o.Uint64()
		if err != nil {
			return Object{}, err
		}
		return o.t.Ref(c.Elem, addr+i*c.Elem.Size), nil
	default:
		return Object{}, fmt.Errorf("'%s' cannot be indexed", o.typ)
	}
}

// CString reads the object as a NUL terminated C string. Char arrays read at
// most their own length; char pointers follow the pointer and read until a
// NUL byte.
func (o Object) CString() (string, error) {
	c := o.typ.Canonical()
	switch c.Kind {
	case KindArray:
		if !o.ref {
			return "", fmt.Errorf("cannot read value of type '%s'", o.typ)
		}
		buf := make([]byte, c.Len)
		if err := o.t.readMemory(o.addr, buf); err != nil {
			return "", err
		}
		for i, b := range buf {
			if b == 0 {
				return string(buf[:i]), nil
			}
		}
		return string(buf), nil
	case KindPointer:
		addr, err := o.Uint64()
		if err != nil {
			return "", err
		}
		return o.t.readCString(addr)
	default:
		return "", fmt.Errorf("'%s' is not a string type", o.typ)
	}
}

// isCharType reports whether the type canonicalizes to a single byte
// character type.
func isCharType(t *Type) bool {
	c := t.Canonical()
	return c.Kind == KindInt && c.Size == 1
}
