package cmds_test

import "testing"

func TestFilter(t *testing.T) {
	wantOut(t, "echo 0x0 0x1 0x2 | filter 'obj > 1'", "(void *)0x2\n")
	wantOut(t, "echo 0x0 0x1 0x2 | filter 'obj >= 1'", "(void *)0x1\n(void *)0x2\n")
	wantOut(t, "echo 0x0 0x1 0x2 | filter 'obj != 1'", "(void *)0x0\n(void *)0x2\n")
	wantOut(t, "echo 0x0 0x1 0x2 | filter 'obj == 0x2'", "(void *)0x2\n")
	wantOut(t, "echo 0x5 | filter 'obj == obj'", "(void *)0x5\n")
}

func TestFilter_memberPath(t *testing.T) {
	wantOut(t, "addr global_struct | filter 'obj.ts_int == 1' | count", "(uint64_t)1\n")
	wantOut(t, "addr global_struct | filter 'obj.ts_int == 2' | count", "(uint64_t)0\n")
	wantOut(t, "addr global_cstruct | filter 'obj.cs_struct.ts_int >= 10' | count", "(uint64_t)1\n")
}

func TestFilter_stringCompare(t *testing.T) {
	wantOut(t, `addr test_name | deref | filter 'obj == "connstat"' | count`, "(uint64_t)1\n")
	wantOut(t, `addr test_name | deref | filter 'obj != "connstat"' | count`, "(uint64_t)0\n")
	wantOut(t, `addr test_namep | deref | filter 'obj == "connstat"' | count`, "(uint64_t)1\n")
}

func TestFilter_badExpressions(t *testing.T) {
	// The expression has to be one argument; an unquoted one is three.
	wantErr(t, "echo 0x0 | filter obj == 1", 2,
		"filter: error: the expression must be a single (quoted) argument")

	wantErr(t, "echo 0x0 | filter", 2,
		"filter: error: the following arguments are required: <expression>")

	wantErr(t, "echo 0x0 | filter 'obj 1'", 1,
		"sdb: filter: invalid input: comparison operator is missing")

	wantErr(t, "echo 0x0 | filter '== 1'", 1,
		"sdb: filter: invalid input: left hand side of expression is missing")

	wantErr(t, "echo 0x0 | filter 'obj =='", 1,
		"sdb: filter: invalid input: right hand side of expression is missing")

	wantErr(t, "echo 0x0 | filter 'foo == 1'", 1,
		"sdb: filter: invalid expression side 'foo'; expressions operate on 'obj'")

	wantErr(t, "echo 0x0 | filter 'obj->ts_int == 1'", 1,
		"sdb: filter: use '.' instead of '->' to access members")

	wantErr(t, "echo 0x0 | filter 'obj == nonsense'", 1,
		"sdb: filter: cannot parse right hand side 'nonsense'")
}

func TestFilter_typeErrors(t *testing.T) {
	// A struct compares against neither integers nor strings.
	wantErr(t, "addr global_struct | deref | filter 'obj == 1'", 1,
		"left hand side has unsupported type (struct test_struct)")
	wantErr(t, `addr global_struct | deref | filter 'obj == "x"'`, 1,
		"left hand side has unsupported type (struct test_struct)")
}
