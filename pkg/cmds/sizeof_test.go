package cmds_test

import "testing"

func TestSizeof(t *testing.T) {
	wantOut(t, "sizeof int", "(size_t)4\n")
	wantOut(t, "sizeof 'unsigned long'", "(size_t)8\n")
	// Bare tag names resolve without the struct keyword, and so do
	// quoted keyword spellings.
	wantOut(t, "sizeof test_struct", "(size_t)20\n")
	wantOut(t, "sizeof 'struct test_struct'", "(size_t)20\n")
	wantOut(t, "sizeof test_struct_t", "(size_t)20\n")
	wantOut(t, "sizeof int test_struct", "(size_t)4\n(size_t)20\n")
}

func TestSizeof_inputObjects(t *testing.T) {
	wantOut(t, "echo 0x0 | sizeof", "(size_t)8\n")
	wantOut(t, "addr global_struct | deref | sizeof", "(size_t)20\n")
}

func TestSizeof_errors(t *testing.T) {
	wantErr(t, "sizeof nope", 1, "sdb: sizeof: could not find type 'nope'")
}
