package target

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Image is the serialized form of a target: a YAML document when loaded from
// a file, a JSON value when shipped over the wire by a serving process. The
// memory section is only present in files; remote targets read memory on
// demand instead.
type Image struct {
	Types   []TypeSpec   `yaml:"types,omitempty" json:"types,omitempty"`
	Symbols []SymbolSpec `yaml:"symbols,omitempty" json:"symbols,omitempty"`
	Memory  []Segment    `yaml:"memory,omitempty" json:"memory,omitempty"`
}

// TypeSpec declares a named type. Kind is one of "int", "struct", "union",
// "enum", "typedef" or "function". Typedefs name their target type in Type;
// structs and unions list their members with explicit offsets, so packed and
// padded layouts are both expressible.
type TypeSpec struct {
	Name    string       `yaml:"name" json:"name"`
	Kind    string       `yaml:"kind" json:"kind"`
	Size    uint64       `yaml:"size,omitempty" json:"size,omitempty"`
	Signed  bool         `yaml:"signed,omitempty" json:"signed,omitempty"`
	Type    string       `yaml:"type,omitempty" json:"type,omitempty"`
	Members []MemberSpec `yaml:"members,omitempty" json:"members,omitempty"`
}

// MemberSpec declares a struct or union member.
type MemberSpec struct {
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type" json:"type"`
	Offset uint64 `yaml:"offset" json:"offset"`
}

// SymbolSpec declares a symbol. Addresses are strings so that the full
// 64-bit kernel address range survives YAML and JSON round trips.
type SymbolSpec struct {
	Name    string `yaml:"name" json:"name"`
	Type    string `yaml:"type" json:"type"`
	Address string `yaml:"address" json:"address"`
}

// Segment is a run of target memory: a start address and hex encoded bytes.
// Whitespace inside the hex data is ignored.
type Segment struct {
	Address string `yaml:"address" json:"address"`
	Data    string `yaml:"data" json:"data"`
}

// ReadImage decodes a YAML image. Unknown fields are an error; a mistyped
// key in a hand-written image should not silently drop a type.
func ReadImage(r io.Reader) (*Image, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var img Image
	if err := dec.Decode(&img); err != nil {
		if err == io.EOF {
			return &Image{}, nil
		}
		return nil, fmt.Errorf("invalid image: %v", err)
	}
	return &img, nil
}

// LoadImage reads a YAML image from a file.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := ReadImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return img, nil
}

// FromImage builds a target whose memory is served from the image's own
// memory section.
func FromImage(img *Image) (*Target, error) {
	mem, err := newImageMemory(img.Memory)
	if err != nil {
		return nil, err
	}
	return newTarget(img, mem)
}

// snapshot returns the serializable portion of the target's image, without
// the memory section.
func (t *Target) snapshot() *Image {
	return &Image{Types: t.img.Types, Symbols: t.img.Symbols}
}

// extent is a coalesced run of mapped memory.
type extent struct {
	addr uint64
	data []byte
}

// imageMemory serves reads from the image's memory section. Adjacent
// segments coalesce at load time so that a struct spanning two declared
// segments still reads in one piece.
type imageMemory struct {
	extents []extent
}

func newImageMemory(segs []Segment) (*imageMemory, error) {
	extents := make([]extent, 0, len(segs))
	for _, seg := range segs {
		addr, err := parseAddress(seg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid image: memory segment: %v", err)
		}
		data, err := decodeHex(seg.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid image: memory segment at %s: %v", seg.Address, err)
		}
		if len(data) == 0 {
			continue
		}
		extents = append(extents, extent{addr: addr, data: data})
	}
	sort.Slice(extents, func(i, j int) bool { return extents[i].addr < extents[j].addr })
	merged := make([]extent, 0, len(extents))
	for _, e := range extents {
		if n := len(merged); n > 0 {
			prev := &merged[n-1]
			end := prev.addr + uint64(len(prev.data))
			if e.addr < end {
				return nil, fmt.Errorf("invalid image: overlapping memory segment at 0x%x", e.addr)
			}
			if e.addr == end {
				prev.data = append(prev.data, e.data...)
				continue
			}
		}
		merged = append(merged, e)
	}
	return &imageMemory{extents: merged}, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(s)
}

func (m *imageMemory) ReadMemory(addr uint64, buf []byte) error {
	i := sort.Search(len(m.extents), func(i int) bool {
		e := m.extents[i]
		return addr < e.addr+uint64(len(e.data))
	})
	if i < len(m.extents) {
		e := m.extents[i]
		if addr >= e.addr && addr+uint64(len(buf)) <= e.addr+uint64(len(e.data)) {
			copy(buf, e.data[addr-e.addr:])
			return nil
		}
	}
	return fmt.Errorf("cannot read %d bytes at address 0x%x", len(buf), addr)
}
