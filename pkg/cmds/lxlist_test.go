package cmds_test

import "testing"

func TestLxList(t *testing.T) {
	wantOut(t, "addr test_modules | lxlist", "(void *)0x2108\n(void *)0x2208\n")
	wantOut(t, "addr test_modules | linux_list", "(void *)0x2108\n(void *)0x2208\n")
	wantOut(t, "echo 0x2000 | lxlist", "(void *)0x2108\n(void *)0x2208\n")

	// Classic pattern: walk the list heads, then recover the enclosing
	// structure of each node.
	wantOut(t, "addr test_modules | lxlist | container_of test_module tm_list | member tm_name",
		"(char [8])\"one\"\n(char [8])\"two\"\n")
}

func TestLxList_RejectsOtherTypes(t *testing.T) {
	wantErr(t, "addr test_avl | linux_list", 1,
		"sdb: linux_list: expected input of type struct list_head *, but received type avl_tree_t *")
}
