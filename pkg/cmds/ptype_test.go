package cmds_test

import (
	"testing"

	"github.com/delphix/sdb-go/pkg/testutil"
)

func TestPtype(t *testing.T) {
	wantOut(t, "ptype test_struct", testutil.Dedent(`
		struct test_struct {
		        int ts_int;
		        void *ts_voidp;
		        int ts_array[2];
		}
		`))
	wantOut(t, "ptype struct list_head", testutil.Dedent(`
		struct list_head {
		        struct list_head *next;
		        struct list_head *prev;
		}
		`))
	wantOut(t, "ptype test_struct_t", "typedef struct test_struct test_struct_t\n")
	wantOut(t, "ptype avl_tree_t", "typedef struct avl_tree avl_tree_t\n")
}

func TestPtype_errors(t *testing.T) {
	wantErr(t, "ptype nope", 1,
		"sdb: ptype: couldn't find typedef, struct, enum, nor union named 'nope'")
	wantErr(t, "ptype", 2,
		"ptype: error: the following arguments are required: <type>")
}
