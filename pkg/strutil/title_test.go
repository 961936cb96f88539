package strutil

import (
	"testing"

	. "github.com/delphix/sdb-go/pkg/tt"
)

func TestTitle(t *testing.T) {
	Test(t, Fn("Title", Title), Table{
		Args("").Rets(""),
		Args("foo").Rets("Foo"),
		Args("\xf0").Rets("\xf0"),
		Args("FOO").Rets("FOO"),
	})
}
