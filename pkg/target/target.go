package target

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Symbol is a named object at a fixed address in the target.
type Symbol struct {
	Name    string
	Type    *Type
	Address uint64
}

// MemReader reads target memory. Implementations fill buf entirely or return
// an error.
type MemReader interface {
	ReadMemory(addr uint64, buf []byte) error
}

// Target is a debuggable program image: types, symbols and memory.
type Target struct {
	types map[string]*Type
	syms  map[string]*Symbol
	mem   MemReader
	img   *Image
	close func() error
}

// newTarget builds a target from an image's type and symbol tables, reading
// memory through mem.
func newTarget(img *Image, mem MemReader) (*Target, error) {
	t := &Target{
		types: make(map[string]*Type),
		syms:  make(map[string]*Symbol),
		mem:   mem,
		img:   img,
	}
	t.seedBaseTypes()
	if err := t.addImageTypes(img.Types); err != nil {
		return nil, err
	}
	for _, s := range img.Symbols {
		typ, err := t.LookupType(s.Type)
		if err != nil {
			return nil, fmt.Errorf("invalid image: symbol %s: %v", s.Name, err)
		}
		addr, err := parseAddress(s.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid image: symbol %s: %v", s.Name, err)
		}
		t.syms[s.Name] = &Symbol{Name: s.Name, Type: typ, Address: addr}
	}
	return t, nil
}

// Close releases the connection behind a remote target. It is a no-op for
// targets loaded from a file.
func (t *Target) Close() error {
	if t.close != nil {
		return t.close()
	}
	return nil
}

func parseAddress(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s'", s)
	}
	return v, nil
}

// base types of an LP64 little-endian target, available even when the image
// declares no types of its own.
var baseTypes = []struct {
	name   string
	size   uint64
	signed bool
}{
	{"char", 1, true},
	{"signed char", 1, true},
	{"unsigned char", 1, false},
	{"short", 2, true},
	{"unsigned short", 2, false},
	{"int", 4, true},
	{"unsigned int", 4, false},
	{"long", 8, true},
	{"unsigned long", 8, false},
	{"long long", 8, true},
	{"unsigned long long", 8, false},
	{"_Bool", 1, false},
}

var baseTypedefs = []struct {
	name, target string
}{
	{"int8_t", "signed char"},
	{"uint8_t", "unsigned char"},
	{"int16_t", "short"},
	{"uint16_t", "unsigned short"},
	{"int32_t", "int"},
	{"uint32_t", "unsigned int"},
	{"int64_t", "long"},
	{"uint64_t", "unsigned long"},
	{"size_t", "unsigned long"},
	{"ssize_t", "long"},
	{"uintptr_t", "unsigned long"},
	{"intptr_t", "long"},
	{"ptrdiff_t", "long"},
	{"bool", "_Bool"},
}

func (t *Target) seedBaseTypes() {
	t.types["void"] = &Type{Kind: KindVoid, Name: "void"}
	for _, b := range baseTypes {
		t.types[b.name] = &Type{Kind: KindInt, Name: b.name, Size: b.size, Signed: b.signed}
	}
	for _, td := range baseTypedefs {
		t.types[td.name] = &Type{
			Kind: KindTypedef, Name: td.name,
			Size: t.types[td.target].Size,
			Elem: t.types[td.target],
		}
	}
}

func (t *Target) addImageTypes(specs []TypeSpec) error {
	// Named types register first so that members and typedef targets can
	// refer to each other regardless of declaration order.
	for _, spec := range specs {
		key, typ, err := shellType(spec)
		if err != nil {
			return fmt.Errorf("invalid image: type %s: %v", spec.Name, err)
		}
		if _, ok := t.types[key]; ok {
			return fmt.Errorf("invalid image: duplicate type '%s'", key)
		}
		t.types[key] = typ
	}
	for _, spec := range specs {
		if err := t.resolveImageType(spec); err != nil {
			return fmt.Errorf("invalid image: type %s: %v", spec.Name, err)
		}
	}
	return nil
}

// shellType creates the registered but not yet resolved type for a spec,
// along with its lookup key.
func shellType(spec TypeSpec) (string, *Type, error) {
	switch spec.Kind {
	case "struct":
		name := "struct " + spec.Name
		return name, &Type{Kind: KindStruct, Name: name, Size: spec.Size}, nil
	case "union":
		name := "union " + spec.Name
		return name, &Type{Kind: KindUnion, Name: name, Size: spec.Size}, nil
	case "enum":
		name := "enum " + spec.Name
		size := spec.Size
		if size == 0 {
			size = 4
		}
		return name, &Type{Kind: KindInt, Name: name, Size: size, Signed: true}, nil
	case "typedef":
		return spec.Name, &Type{Kind: KindTypedef, Name: spec.Name}, nil
	case "int":
		return spec.Name, &Type{Kind: KindInt, Name: spec.Name, Size: spec.Size, Signed: spec.Signed}, nil
	case "function":
		return spec.Name, &Type{Kind: KindFunction, Name: spec.Name}, nil
	default:
		return "", nil, fmt.Errorf("unknown type kind '%s'", spec.Kind)
	}
}

func (t *Target) resolveImageType(spec TypeSpec) error {
	switch spec.Kind {
	case "struct", "union":
		typ := t.types[spec.Kind+" "+spec.Name]
		for _, m := range spec.Members {
			mt, err := t.LookupType(m.Type)
			if err != nil {
				return fmt.Errorf("member %s: %v", m.Name, err)
			}
			typ.Members = append(typ.Members, Member{Name: m.Name, Type: mt, Offset: m.Offset})
		}
	case "typedef":
		typ := t.types[spec.Name]
		target, err := t.LookupType(spec.Type)
		if err != nil {
			return err
		}
		typ.Elem = target
		typ.Size = target.Size
	}
	return nil
}

// LookupType resolves a C type name, including derived pointer and array
// spellings such as "struct spa *" or "int [2]". Qualifiers are ignored.
func (t *Target) LookupType(name string) (*Type, error) {
	name = stripQualifiers(name)
	if name == "" {
		return nil, fmt.Errorf("could not find type ''")
	}
	if strings.HasSuffix(name, "*") {
		elem, err := t.LookupType(strings.TrimSpace(name[:len(name)-1]))
		if err != nil {
			return nil, err
		}
		return PointerTo(elem), nil
	}
	if i := strings.Index(name, "["); i >= 0 {
		base := strings.TrimSpace(name[:i])
		dims, err := parseArrayDims(name[i:])
		if err != nil {
			return nil, fmt.Errorf("could not find type '%s'", name)
		}
		typ, err := t.LookupType(base)
		if err != nil {
			return nil, err
		}
		for j := len(dims) - 1; j >= 0; j-- {
			typ = ArrayOf(typ, dims[j])
		}
		return typ, nil
	}
	if typ, ok := t.types[name]; ok {
		return typ, nil
	}
	return nil, fmt.Errorf("could not find type '%s'", name)
}

func stripQualifiers(name string) string {
	fields := strings.Fields(name)
	kept := fields[:0]
	for _, f := range fields {
		if f == "const" || f == "volatile" || f == "restrict" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func parseArrayDims(s string) ([]uint64, error) {
	var dims []uint64
	for s != "" {
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") {
			return nil, fmt.Errorf("malformed array suffix")
		}
		end := strings.Index(s, "]")
		if end < 0 {
			return nil, fmt.Errorf("malformed array suffix")
		}
		n, err := strconv.ParseUint(strings.TrimSpace(s[1:end]), 0, 64)
		if err != nil {
			return nil, err
		}
		dims = append(dims, n)
		s = s[end+1:]
	}
	return dims, nil
}

// Symbol resolves a symbol by name, returning a reference object at the
// symbol's address.
func (t *Target) Symbol(name string) (Object, error) {
	sym, ok := t.syms[name]
	if !ok {
		return Object{}, fmt.Errorf("could not find symbol '%s'", name)
	}
	return t.Ref(sym.Type, sym.Address), nil
}

// Symbols returns all symbols in the target, sorted by name.
func (t *Target) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, len(t.syms))
	for _, s := range t.syms {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].Name < syms[j].Name })
	return syms
}

// Types returns the names of all named types in the target, sorted.
func (t *Target) Types() []string {
	names := make([]string, 0, len(t.types))
	for name := range t.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Target) readMemory(addr uint64, buf []byte) error {
	if t.mem == nil {
		return fmt.Errorf("cannot read %d bytes at address 0x%x: target has no memory", len(buf), addr)
	}
	return t.mem.ReadMemory(addr, buf)
}

// readCString reads a NUL terminated string starting at addr, up to a sane
// bound.
func (t *Target) readCString(addr uint64) (string, error) {
	const maxCString = 4096
	var sb strings.Builder
	buf := make([]byte, 1)
	for i := 0; i < maxCString; i++ {
		if err := t.readMemory(addr+uint64(i), buf); err != nil {
			return "", err
		}
		if buf[0] == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(buf[0])
	}
	return sb.String(), nil
}
