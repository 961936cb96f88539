package cmds_test

import "testing"

func TestAvl(t *testing.T) {
	// In-order traversal, each node backed up by avl_offset.
	wantOut(t, "addr test_avl | avl",
		"(void *)0x1000\n(void *)0x1020\n(void *)0x1040\n")
	wantOut(t, "addr test_avl | avl | cast struct test_payload * | member p_id",
		"(int)1\n(int)2\n(int)3\n")
	wantOut(t, "addr test_avl | avl | count", "(uint64_t)3\n")

	// A raw address is a void pointer, which coerces to the tree type.
	wantOut(t, "echo 0x1080 | avl",
		"(void *)0x1000\n(void *)0x1020\n(void *)0x1040\n")
}

func TestAvl_RejectsOtherTypes(t *testing.T) {
	wantErr(t, "addr test_modules | avl", 1,
		"expected input of type avl_tree_t *, but received type struct list_head *")
}
