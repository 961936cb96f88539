package target

import (
	"fmt"
	"strings"
)

// Render formats the object the way a kernel debugger prints it. Pointers to
// live memory are dereferenced one level, structs print their members one per
// line, and char data prints as a quoted string:
//
//	*(int *)0xffffffffc0000000 = 16909060
//	(void *)0xffff88d26353c108
//	(struct test_struct){
//	        .ts_int = (int)1,
//	        ...
//	}
//
// The error return reports memory faults for objects whose value cannot be
// read at all; a pointer whose pointee is unreadable falls back to the bare
// pointer form instead.
func (o Object) Render() (string, error) {
	c := o.typ.Canonical()
	if c.Kind == KindPointer {
		v, err := o.Uint64()
		if err != nil {
			return "", err
		}
		spell := o.typ.String()
		if c.Elem.Kind == KindVoid || v == 0 {
			return fmt.Sprintf("(%s)0x%x", spell, v), nil
		}
		if isCharType(c.Elem) {
			if s, err := o.t.readCString(v); err == nil && printable(s) {
				return fmt.Sprintf("(%s)0x%x = %q", spell, v, s), nil
			}
			return fmt.Sprintf("(%s)0x%x", spell, v), nil
		}
		pointee := o.t.Ref(c.Elem, v)
		body, err := renderValue(pointee, 0)
		if err != nil {
			return fmt.Sprintf("(%s)0x%x", spell, v), nil
		}
		return fmt.Sprintf("*(%s)0x%x = %s", spell, v, body), nil
	}
	return renderTyped(o, 0)
}

// String formats the object, folding memory faults into the output. Most
// callers want Render and an explicit error instead.
func (o Object) String() string {
	s, err := o.Render()
	if err != nil {
		return fmt.Sprintf("(%s)<%v>", o.typ, err)
	}
	return s
}

// renderTyped renders "(type)value" at the given indentation depth.
func renderTyped(o Object, indent int) (string, error) {
	body, err := renderValue(o, indent)
	if err != nil {
		return "", err
	}
	c := o.typ.Canonical()
	if c.Kind == KindArray && isCharType(c.Elem) && strings.HasPrefix(body, "\"") {
		return fmt.Sprintf("(%s)%s", o.typ, body), nil
	}
	return fmt.Sprintf("(%s)%s", o.typ, body), nil
}

// renderValue renders the bare value of an object, without the leading type.
func renderValue(o Object, indent int) (string, error) {
	c := o.typ.Canonical()
	switch c.Kind {
	case KindInt:
		if c.Signed {
			v, err := o.Int64()
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d", v), nil
		}
		v, err := o.Uint64()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	case KindPointer:
		v, err := o.Uint64()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("0x%x", v), nil
	case KindStruct, KindUnion:
		addr, ok := o.Address()
		if !ok {
			return "", fmt.Errorf("cannot format value of type '%s'", o.typ)
		}
		var sb strings.Builder
		sb.WriteString("{\n")
		pad := strings.Repeat(" ", indent+8)
		for _, m := range c.Members {
			mo := o.t.Ref(m.Type, addr+m.Offset)
			s, err := renderTyped(mo, indent+8)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s.%s = %s,\n", pad, m.Name, s)
		}
		sb.WriteString(strings.Repeat(" ", indent))
		sb.WriteString("}")
		return sb.String(), nil
	case KindArray:
		if isCharType(c.Elem) {
			if s, err := o.CString(); err == nil && printable(s) {
				return fmt.Sprintf("%q", s), nil
			}
		}
		var elems []string
		for i := uint64(0); i < c.Len; i++ {
			eo, err := o.Index(i)
			if err != nil {
				return "", err
			}
			s, err := renderValue(eo, indent)
			if err != nil {
				return "", err
			}
			elems = append(elems, s)
		}
		if len(elems) == 0 {
			return "{}", nil
		}
		return "{ " + strings.Join(elems, ", ") + " }", nil
	case KindVoid:
		return "(void)", nil
	default:
		return "", fmt.Errorf("cannot format value of type '%s'", o.typ)
	}
}

func printable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			return false
		}
	}
	return true
}
