package target_test

import (
	"strings"
	"testing"

	"github.com/delphix/sdb-go/pkg/target"
	"github.com/delphix/sdb-go/pkg/target/targettest"
)

func render(t *testing.T, obj target.Object) string {
	t.Helper()
	s, err := obj.Render()
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	return s
}

func symbol(t *testing.T, tgt *target.Target, name string) target.Object {
	t.Helper()
	obj, err := tgt.Symbol(name)
	if err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestRenderScalars(t *testing.T) {
	tgt := targettest.New(t)

	if got, want := render(t, symbol(t, tgt, "global_int")), "(int)16909060"; got != want {
		t.Errorf("global_int renders %q, want %q", got, want)
	}

	vp, _ := tgt.LookupType("void *")
	if got, want := render(t, tgt.Value(vp, 0x1234)), "(void *)0x1234"; got != want {
		t.Errorf("void pointer renders %q, want %q", got, want)
	}
	if got, want := render(t, tgt.Value(vp, 0)), "(void *)0x0"; got != want {
		t.Errorf("null void pointer renders %q, want %q", got, want)
	}
}

func TestRenderStrings(t *testing.T) {
	tgt := targettest.New(t)

	if got, want := render(t, symbol(t, tgt, "test_name")), `(char [8])"connstat"`; got != want {
		t.Errorf("char array renders %q, want %q", got, want)
	}
	if got, want := render(t, symbol(t, tgt, "test_namep")), `(char *)0x3000 = "connstat"`; got != want {
		t.Errorf("char pointer renders %q, want %q", got, want)
	}
}

func TestRenderStruct(t *testing.T) {
	tgt := targettest.New(t)

	want := strings.Join([]string{
		"(struct test_struct){",
		"        .ts_int = (int)1,",
		"        .ts_voidp = (void *)0xffffffffc0000000,",
		"        .ts_array = (int [2]){ 252645135, -559038737 },",
		"}",
	}, "\n")
	if got := render(t, symbol(t, tgt, "global_struct")); got != want {
		t.Errorf("global_struct renders:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNestedStruct(t *testing.T) {
	tgt := targettest.New(t)

	want := strings.Join([]string{
		"(struct complex_struct){",
		"        .cs_structp = (struct test_struct *)0xffffffffc0a8aee0,",
		"        .cs_struct = (struct test_struct){",
		"                .ts_int = (int)10,",
		"                .ts_voidp = (void *)0xffffffffd0000000,",
		"                .ts_array = (int [2]){ -2147483648, 2147483647 },",
		"        },",
		"        .cs_structp_null = (struct test_struct *)0x0,",
		"}",
	}, "\n")
	if got := render(t, symbol(t, tgt, "global_cstruct")); got != want {
		t.Errorf("global_cstruct renders:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPointerDeref(t *testing.T) {
	tgt := targettest.New(t)

	ptr, err := symbol(t, tgt, "global_int").AddressOf()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := render(t, ptr), "*(int *)0xffffffffc0000000 = 16909060"; got != want {
		t.Errorf("int pointer renders %q, want %q", got, want)
	}

	sptr, err := symbol(t, tgt, "global_struct").AddressOf()
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"*(struct test_struct *)0xffffffffc0a8aee0 = {",
		"        .ts_int = (int)1,",
		"        .ts_voidp = (void *)0xffffffffc0000000,",
		"        .ts_array = (int [2]){ 252645135, -559038737 },",
		"}",
	}, "\n")
	if got := render(t, sptr); got != want {
		t.Errorf("struct pointer renders:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderUnreadablePointer(t *testing.T) {
	tgt := targettest.New(t)

	// The pointee is unmapped, so the pointer renders without dereferencing.
	tp, err := tgt.LookupType("struct test_struct *")
	if err != nil {
		t.Fatal(err)
	}
	obj := tgt.Value(tp, 0x999000)
	if got, want := render(t, obj), "(struct test_struct *)0x999000"; got != want {
		t.Errorf("unreadable pointer renders %q, want %q", got, want)
	}
}

func TestRenderFault(t *testing.T) {
	tgt := targettest.New(t)
	_, err := symbol(t, tgt, "global_void_ptr").Render()
	if err == nil || !strings.Contains(err.Error(), "cannot read") {
		t.Errorf("bad error for unmapped render: %v", err)
	}
}

func TestRenderTypedefStruct(t *testing.T) {
	tgt := targettest.New(t)

	want := strings.Join([]string{
		"(avl_tree_t){",
		"        .avl_root = (struct avl_node *)0x1028,",
		"        .avl_offset = (size_t)8,",
		"}",
	}, "\n")
	if got := render(t, symbol(t, tgt, "test_avl")); got != want {
		t.Errorf("test_avl renders:\n%s\nwant:\n%s", got, want)
	}
}
