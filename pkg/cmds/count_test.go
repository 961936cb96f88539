package cmds_test

import "testing"

func TestCount(t *testing.T) {
	wantOut(t, "echo 0x0 0x1 0x2 | count", "(uint64_t)3\n")
	wantOut(t, "count", "(uint64_t)0\n")
	wantOut(t, "addr test_avl | walk | count", "(uint64_t)3\n")
}
