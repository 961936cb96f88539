package cmds_test

import "testing"

func TestAddress(t *testing.T) {
	wantOut(t, "addr global_int", "*(int *)0xffffffffc0000000 = 16909060\n")
	wantOut(t, "addr global_int | type", "int *\n")
	// Hex arguments become raw void pointers.
	wantOut(t, "addr 0x1080 | type", "void *\n")
}

func TestAddress_pointersPassThrough(t *testing.T) {
	wantOut(t, "addr global_int | addr | type", "int *\n")
	wantOut(t, "echo 0x10 | addr", "(void *)0x10\n")
}

func TestAddress_appendsAfterInput(t *testing.T) {
	wantOut(t, "echo 0x1 | addr 0x2", "(void *)0x1\n(void *)0x2\n")
}

func TestAddress_errors(t *testing.T) {
	// The reported name is the alias the line used.
	wantErr(t, "addr no_such_symbol", 1,
		"sdb: addr: symbol not found: no_such_symbol")
	wantErr(t, "address no_such_symbol", 1,
		"sdb: address: symbol not found: no_such_symbol")
	// Objects synthesized mid-pipeline live in no memory.
	wantErr(t, "addr global_int | deref | sum | addr", 1,
		"sdb: addr: cannot take address of value of type 'uint64_t'")
}
