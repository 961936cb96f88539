package target

import (
	"strings"
	"testing"

	"github.com/delphix/sdb-go/pkg/tt"
)

var (
	intT   = &Type{Kind: KindInt, Name: "int", Size: 4, Signed: true}
	charT  = &Type{Kind: KindInt, Name: "char", Size: 1, Signed: true}
	spaT   = &Type{Kind: KindStruct, Name: "struct spa", Size: 16}
	spaTd  = &Type{Kind: KindTypedef, Name: "spa_t", Size: 16, Elem: spaT}
	spaTd2 = &Type{Kind: KindTypedef, Name: "spa_alias_t", Size: 16, Elem: spaTd}
)

func TestTypeString(t *testing.T) {
	tt.Test(t, tt.Fn("String", (*Type).String), tt.Table{
		tt.Args(intT).Rets("int"),
		tt.Args(spaT).Rets("struct spa"),
		tt.Args(spaTd).Rets("spa_t"),
		tt.Args(PointerTo(intT)).Rets("int *"),
		tt.Args(PointerTo(PointerTo(intT))).Rets("int **"),
		tt.Args(PointerTo(spaT)).Rets("struct spa *"),
		tt.Args(ArrayOf(intT, 2)).Rets("int [2]"),
		tt.Args(ArrayOf(ArrayOf(intT, 3), 2)).Rets("int [2][3]"),
		tt.Args(ArrayOf(PointerTo(spaT), 4)).Rets("struct spa * [4]"),
	})
}

func TestCanonicalName(t *testing.T) {
	tt.Test(t, tt.Fn("CanonicalName", (*Type).CanonicalName), tt.Table{
		tt.Args(intT).Rets("int"),
		tt.Args(spaTd).Rets("struct spa"),
		tt.Args(spaTd2).Rets("struct spa"),
		tt.Args(PointerTo(spaTd)).Rets("struct spa *"),
		tt.Args(PointerTo(PointerTo(spaTd))).Rets("struct spa **"),
		tt.Args(ArrayOf(spaTd, 4)).Rets("struct spa [4]"),
	})
}

func TestDeclString(t *testing.T) {
	tt.Test(t, tt.Fn("declString", declString), tt.Table{
		tt.Args(intT, "x").Rets("int x"),
		tt.Args(PointerTo(intT), "p").Rets("int *p"),
		tt.Args(PointerTo(PointerTo(charT)), "argv").Rets("char **argv"),
		tt.Args(ArrayOf(charT, 16), "name").Rets("char name[16]"),
		tt.Args(PointerTo(ArrayOf(intT, 2)), "p").Rets("int (*p)[2]"),
		tt.Args(ArrayOf(PointerTo(intT), 2), "p").Rets("int *p[2]"),
	})
}

func TestDefinition(t *testing.T) {
	listT := &Type{Kind: KindStruct, Name: "struct list_head", Size: 16}
	listT.Members = []Member{
		{Name: "next", Type: PointerTo(listT), Offset: 0},
		{Name: "prev", Type: PointerTo(listT), Offset: 8},
	}
	want := strings.Join([]string{
		"struct list_head {",
		"        struct list_head *next;",
		"        struct list_head *prev;",
		"}",
	}, "\n")
	if got := listT.Definition(); got != want {
		t.Errorf("Definition() = %q, want %q", got, want)
	}

	if got, want := spaTd.Definition(), "typedef struct spa spa_t"; got != want {
		t.Errorf("Definition() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tt.Test(t, tt.Fn("truncate", truncate), tt.Table{
		tt.Args(uint64(0x1234), uint64(1)).Rets(uint64(0x34)),
		tt.Args(uint64(0xdeadbeef), uint64(4)).Rets(uint64(0xdeadbeef)),
		tt.Args(uint64(0x1_0000_0001), uint64(4)).Rets(uint64(1)),
		tt.Args(uint64(0xffffffffffffffff), uint64(8)).Rets(uint64(0xffffffffffffffff)),
	})
}
