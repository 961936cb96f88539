package cmds_test

import "testing"

func TestTail(t *testing.T) {
	wantOut(t, "echo 0x0 0x1 0x2 | tail 2", "(void *)0x1\n(void *)0x2\n")
	wantOut(t, "echo 0x0 0x1 0x2 | tail -n 2", "(void *)0x1\n(void *)0x2\n")
	wantOut(t, "echo 0x0 0x1 0x2 | tail 0", "")

	// A count beyond the stream length yields the whole stream, as does
	// the default of 10.
	wantOut(t, "echo 0x0 0x1 | tail 5", "(void *)0x0\n(void *)0x1\n")
	wantOut(t, "echo 0x0 0x1 0x2 | tail", "(void *)0x0\n(void *)0x1\n(void *)0x2\n")

	wantOut(t, "addr test_avl | avl | tail 1", "(void *)0x1040\n")
}

func TestTail_Errors(t *testing.T) {
	wantErr(t, "echo 0x0 | tail 1 2", 2, "tail: error: expected a single count")
	wantErr(t, "echo 0x0 | tail five", 1, "sdb: tail: invalid input: five")
}
