package getopt

import (
	"testing"

	"github.com/delphix/sdb-go/pkg/tt"
)

var (
	vSpec = &OptionSpec{'v', "verbose", NoArgument}
	nSpec = &OptionSpec{'n', "count", RequiredArgument}
	cSpec = &OptionSpec{'c', "color", OptionalArgument}

	specs = []*OptionSpec{vSpec, nSpec, cSpec}
)

func TestParse(t *testing.T) {
	test := func(args []string, wantOpts []*Option, wantArgs []string, wantErr string) {
		t.Helper()
		opts, nonOptArgs, err := Parse(args, specs, GNU)
		tt.Test(t, tt.Fn("Parse", func() ([]*Option, []string) { return opts, nonOptArgs }),
			tt.Table{tt.Args().Rets(wantOpts, wantArgs)})
		if wantErr == "" {
			if err != nil {
				t.Errorf("Parse(%v) -> error %v, want nil", args, err)
			}
		} else if err == nil || err.Error() != wantErr {
			t.Errorf("Parse(%v) -> error %v, want %q", args, err, wantErr)
		}
	}

	test(nil, nil, nil, "")
	test([]string{"foo", "bar"}, nil, []string{"foo", "bar"}, "")
	test([]string{"-v"}, []*Option{{Spec: vSpec}}, nil, "")
	test([]string{"--verbose"}, []*Option{{Spec: vSpec, Long: true}}, nil, "")
	test([]string{"-n", "10"}, []*Option{{Spec: nSpec, Argument: "10"}}, nil, "")
	test([]string{"-n10"}, []*Option{{Spec: nSpec, Argument: "10"}}, nil, "")
	test([]string{"--count=10"},
		[]*Option{{Spec: nSpec, Long: true, Argument: "10"}}, nil, "")
	test([]string{"--count", "10"},
		[]*Option{{Spec: nSpec, Long: true, Argument: "10"}}, nil, "")
	// Clustered short options.
	test([]string{"-vn3", "x"},
		[]*Option{{Spec: vSpec}, {Spec: nSpec, Argument: "3"}}, []string{"x"}, "")
	// Option parsing stops after --.
	test([]string{"--", "-v"}, nil, []string{"-v"}, "")

	test([]string{"-n"}, []*Option{{Spec: nSpec}}, nil, "missing argument for -n")
	test([]string{"--count"},
		[]*Option{{Spec: nSpec, Long: true}}, nil, "missing argument for --count")
	test([]string{"-x"},
		[]*Option{{Spec: &OptionSpec{'x', "", OptionalArgument}, Unknown: true}},
		nil, "unknown option -x")
	test([]string{"--bad"},
		[]*Option{{Spec: &OptionSpec{0, "bad", OptionalArgument}, Unknown: true, Long: true}},
		nil, "unknown option --bad")
}

func TestParse_OptionalArgument(t *testing.T) {
	opts, _, err := Parse([]string{"-c", "red"}, specs, GNU)
	if err != nil {
		t.Fatal(err)
	}
	// An optional argument is only consumed when attached to the option.
	if len(opts) != 1 || opts[0].Argument != "" {
		t.Errorf("Parse(-c red) -> opts %v, want single -c without argument", opts)
	}

	opts, _, err = Parse([]string{"-cred"}, specs, GNU)
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 1 || opts[0].Argument != "red" {
		t.Errorf("Parse(-cred) -> opts %v, want single -c with argument red", opts)
	}
}
