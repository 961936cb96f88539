package cmds_test

import "testing"

func TestContainerOf(t *testing.T) {
	wantOut(t, "echo 0x2108 | container_of test_module tm_list | type",
		"struct test_module *\n")
	wantOut(t, "echo 0x2108 | container_of test_module tm_list | member tm_name",
		"(char [8])\"one\"\n")
	// The member offset is subtracted from the pointer.
	wantOut(t, "echo 0x1028 | container_of test_payload p_node | member p_id",
		"(int)2\n")
}

func TestContainerOf_errors(t *testing.T) {
	wantErr(t, "echo 0x10 | container_of test_module nope", 1,
		"sdb: container_of: 'struct test_module' has no member 'nope'")
	wantErr(t, "echo 0x10 | container_of struct test_module", 1,
		"sdb: container_of: skip keyword 'struct' and try again")
	wantErr(t, "echo 0x10 | container_of nosuch tm_list", 1,
		"sdb: container_of: could not find type 'struct nosuch'")
	wantErr(t, "addr global_int | deref | container_of test_module tm_list", 1,
		"sdb: container_of: 'int' is not a pointer type")
	wantErr(t, "echo 0x0 | container_of test_module tm_list", 1,
		"sdb: container_of: address 0x0 underflows the offset of 'tm_list'")
	wantErr(t, "echo 0x10 | container_of test_module", 2,
		"container_of: error: the following arguments are required: <type> <member>")
}
