package cmds_test

import "testing"

func TestSum(t *testing.T) {
	wantOut(t, "echo 0 1 | sum", "(uint64_t)1\n")
	wantOut(t, "echo 0x0 0x1 | sum", "(uint64_t)1\n")
	wantOut(t, "echo 0x10 0x20 0x30 | sum", "(uint64_t)96\n")
	wantOut(t, "sum", "(uint64_t)0\n")
	wantOut(t, "addr global_int | deref | sum", "(uint64_t)16909060\n")
}

func TestSum_errors(t *testing.T) {
	wantErr(t, "addr global_struct | deref | sum", 1,
		"sdb: sum: 'struct test_struct' is not an integer or pointer type")
}
