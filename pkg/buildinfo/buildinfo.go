// Package buildinfo contains build information.
//
// Some of the exported variables may be set during compilation by passing
// -ldflags "-X github.com/delphix/sdb-go/pkg/buildinfo.NAME=VALUE" to
// "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/delphix/sdb-go/pkg/prog"
)

// VersionBase identifies the version of sdb. On development commits, it
// identifies the next release.
const VersionBase = "0.1.0"

// VCSOverride may be set during compilation to "time-commit" (e.g.
// "20220320172241-5dc8c02a32cf") for identifying the version of
// development builds.
//
// It is only needed if the automatic population of version information
// implemented in devVersion fails.
var VCSOverride string

// BuildVariant may be set during compilation to identify a particular
// build variant, such as a build by a specific distribution.
var BuildVariant string

// Type describes the type of Value.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   addVariant(devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo), BuildVariant),
	GoVersion: runtime.Version(),
}

func addVariant(version, variant string) string {
	if variant != "" {
		version += "+" + variant
	}
	return version
}

func devVersion(next, vcsOverride string, f func() (*debug.BuildInfo, bool)) string {
	fallback := next + "-dev.unknown"
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	bi, ok := f()
	if !ok {
		return fallback
	}
	// If the main module's version is known, use it.
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	// Otherwise, reconstruct a version string from the VCS information.
	m := make(map[string]string)
	for _, s := range bi.Settings {
		if k := strings.TrimPrefix(s.Key, "vcs."); k != s.Key {
			m[k] = s.Value
		}
	}
	t, err := time.Parse(time.RFC3339Nano, m["time"])
	if err != nil {
		return fallback
	}
	revision := m["revision"]
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if revision == "" {
		return fallback
	}
	version := fmt.Sprintf("%s-dev.0.%s-%s", next, t.Format("20060102150405"), revision)
	if m["modified"] == "true" {
		return version + "-dirty"
	}
	return version
}

// Program is the buildinfo subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
