// Package targettest provides a small canned target image for tests: a pair
// of global structs that point at each other, an AVL tree with three nodes,
// a two-element linked list and a C string, all with fully mapped memory.
package targettest

import (
	"strings"
	"testing"

	"github.com/delphix/sdb-go/pkg/target"
)

// Addresses of the fixture's symbols.
const (
	GlobalIntAddr     = 0xffffffffc0000000
	GlobalVoidPtrAddr = 0xffff88d26353c108
	GlobalStructAddr  = 0xffffffffc0a8aee0
	GlobalCStructAddr = 0xffffffffd0000000
	AvlTreeAddr       = 0x1080
	ModulesAddr       = 0x2000
	StringAddr        = 0x3000
)

// ImageYAML is the fixture image. The global_void_ptr symbol deliberately
// has no mapped memory behind it, for exercising read faults.
const ImageYAML = `
types:
  - name: test_struct
    kind: struct
    size: 20
    members:
      - { name: ts_int, type: int, offset: 0 }
      - { name: ts_voidp, type: void *, offset: 4 }
      - { name: ts_array, type: "int [2]", offset: 12 }
  - name: complex_struct
    kind: struct
    size: 36
    members:
      - { name: cs_structp, type: struct test_struct *, offset: 0 }
      - { name: cs_struct, type: struct test_struct, offset: 8 }
      - { name: cs_structp_null, type: struct test_struct *, offset: 28 }
  - name: test_struct_t
    kind: typedef
    type: struct test_struct
  - name: avl_node
    kind: struct
    size: 16
    members:
      - { name: avl_child, type: "struct avl_node *[2]", offset: 0 }
  - name: avl_tree
    kind: struct
    size: 16
    members:
      - { name: avl_root, type: struct avl_node *, offset: 0 }
      - { name: avl_offset, type: size_t, offset: 8 }
  - name: avl_tree_t
    kind: typedef
    type: struct avl_tree
  - name: test_payload
    kind: struct
    size: 24
    members:
      - { name: p_id, type: int, offset: 0 }
      - { name: p_node, type: struct avl_node, offset: 8 }
  - name: list_head
    kind: struct
    size: 16
    members:
      - { name: next, type: struct list_head *, offset: 0 }
      - { name: prev, type: struct list_head *, offset: 8 }
  - name: test_module
    kind: struct
    size: 24
    members:
      - { name: tm_name, type: "char [8]", offset: 0 }
      - { name: tm_list, type: struct list_head, offset: 8 }
symbols:
  - { name: global_int, type: int, address: "0xffffffffc0000000" }
  - { name: global_void_ptr, type: void *, address: "0xffff88d26353c108" }
  - { name: global_struct, type: struct test_struct, address: "0xffffffffc0a8aee0" }
  - { name: global_cstruct, type: struct complex_struct, address: "0xffffffffd0000000" }
  - { name: test_avl, type: avl_tree_t, address: "0x1080" }
  - { name: test_modules, type: struct list_head, address: "0x2000" }
  - { name: test_name, type: "char [8]", address: "0x3000" }
  - { name: test_namep, type: char *, address: "0x3100" }
memory:
  - address: "0xffffffffc0000000"
    data: "04030201"
  - address: "0xffffffffc0a8aee0"
    data: |
      01000000
      000000c0ffffffff
      0f0f0f0f efbeadde
  - address: "0xffffffffd0000000"
    data: |
      e0aea8c0ffffffff
      0a000000 000000d0ffffffff 00000080 ffffff7f
      0000000000000000
  - address: "0x1000"
    data: |
      01000000 00000000
      0000000000000000 0000000000000000
      0000000000000000
      02000000 00000000
      0810000000000000 4810000000000000
      0000000000000000
      03000000 00000000
      0000000000000000 0000000000000000
  - address: "0x1080"
    data: "2810000000000000 0800000000000000"
  - address: "0x2000"
    data: "0821000000000000 0822000000000000"
  - address: "0x2100"
    data: |
      6f6e650000000000
      0822000000000000 0020000000000000
  - address: "0x2200"
    data: |
      74776f0000000000
      0020000000000000 0821000000000000
  - address: "0x3000"
    data: "636f6e6e73746174"
  - address: "0x3100"
    data: "0030000000000000"
`

// New loads the fixture image into a fresh target.
func New(t *testing.T) *target.Target {
	t.Helper()
	img, err := target.ReadImage(strings.NewReader(ImageYAML))
	if err != nil {
		t.Fatalf("parse fixture image: %v", err)
	}
	tgt, err := target.FromImage(img)
	if err != nil {
		t.Fatalf("load fixture image: %v", err)
	}
	return tgt
}
