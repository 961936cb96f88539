package cmds_test

import (
	"sort"
	"strings"
	"testing"
)

func TestHelp_ListsCommands(t *testing.T) {
	out, code := run(t, "help")
	if code != 0 {
		t.Fatalf("Eval(help) = %d, want 0", code)
	}
	for _, want := range []string{
		"echo, cc             turn integer literals into objects and append them to the pipeline\n",
		"count, cnt, wc       return a count of the objects in the pipeline\n",
		"help                 print command usage\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output %q misses %q", out, want)
		}
	}
	// One line per registration, sorted by primary name.
	var primaries []string
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		primaries = append(primaries, strings.TrimSuffix(strings.Fields(line)[0], ","))
	}
	if !sort.StringsAreSorted(primaries) {
		t.Errorf("help lines are not sorted by primary name: %q", primaries)
	}
}

func TestHelp_SingleCommand(t *testing.T) {
	out, code := run(t, "help echo")
	if code != 0 {
		t.Fatalf("Eval(help echo) = %d, want 0", code)
	}
	for _, want := range []string{
		"SUMMARY",
		"    echo [address ...]",
		"ALIASES",
		"    echo, cc",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help echo output %q misses %q", out, want)
		}
	}
}

func TestHelp_WalkerSection(t *testing.T) {
	out, code := run(t, "help avl")
	if code != 0 {
		t.Fatalf("Eval(help avl) = %d, want 0", code)
	}
	if want := "This is a Walker for avl_tree_t *.  See 'help walk'.\n"; !strings.Contains(out, want) {
		t.Errorf("help avl output %q misses %q", out, want)
	}
}

func TestHelp_Verbose(t *testing.T) {
	out, code := run(t, "help -v")
	if code != 0 {
		t.Fatalf("Eval(help -v) = %d, want 0", code)
	}
	if n := strings.Count(out, "SUMMARY"); n < 20 {
		t.Errorf("help -v printed %d full helps, want one per command", n)
	}
}

func TestHelp_Unknown(t *testing.T) {
	wantOut(t, "help nope", "Unknown command: nope\n")
}

func TestHelp_Errors(t *testing.T) {
	wantErr(t, "help a b", 2, "help: error: expected at most one command name")
}
