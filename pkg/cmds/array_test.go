package cmds_test

import "testing"

func TestArray(t *testing.T) {
	wantOut(t, "addr global_struct | member ts_array | array",
		"(int)252645135\n(int)-559038737\n")
	wantOut(t, "addr global_struct | member ts_array | array 1", "(int)252645135\n")
	wantOut(t, "addr test_name | array | count", "(uint64_t)8\n")

	// Pointers have no intrinsic length, so the count drives the walk.
	wantOut(t, "addr global_cstruct | member cs_structp | array 1 | member ts_int",
		"(int)1\n")
	wantOut(t, "addr test_avl | member avl_root | array 0", "")
}

func TestArray_OversizedCountWarns(t *testing.T) {
	wantOut(t, "addr global_struct | member ts_array | array 5",
		"warning: requested size 5 exceeds type size 2\n(int)252645135\n(int)-559038737\n")
}

func TestArray_Errors(t *testing.T) {
	wantErr(t, "echo 0x0 | array", 1,
		"sdb: array: 'void *' is a pointer - please specify the number of elements")
	wantErr(t, "addr global_int | deref | array", 1,
		"sdb: array: 'int' is not an array nor a pointer type")
	wantErr(t, "echo 0x0 | array 1 2", 2, "array: error: expected a single element count")
	wantErr(t, "echo 0x0 | array nope", 1, "sdb: array: invalid input: nope")
}
