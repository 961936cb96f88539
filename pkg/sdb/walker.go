package sdb

import (
	"fmt"
	"strings"

	"github.com/delphix/sdb-go/pkg/target"
)

// Walker iterates the elements of one specific container type. The
// generic walk command and the locator fallback dispatch to walkers by
// the type they declare.
type Walker interface {
	Command
	// WalkType is the container type the walker understands.
	WalkType() string
	// Walk yields the elements contained in obj.
	Walk(c *Context, obj target.Object) Stream
}

// WalkInput runs w over every input object, checking each against the
// walker's declared type. Walker commands call it from Run.
func WalkInput(c *Context, w Walker, in Stream) Stream {
	return func(yield func(target.Object) bool) {
		name := w.base().Name
		want, err := c.Target.LookupType(w.WalkType())
		if err != nil {
			Throw(&CommandError{Command: name, Message: err.Error()})
		}
		for obj := range in {
			if obj.Type().CanonicalName() != want.CanonicalName() {
				Throw(&CommandError{
					Command: name,
					Message: fmt.Sprintf("expected input of type %s, but received type %s",
						w.WalkType(), obj.Type()),
				})
			}
			if !forward(w.Walk(c, obj), yield) {
				return
			}
		}
	}
}

// FindWalker returns an instance of the registered walker for typ, or
// nil if no walker handles its canonical type.
func FindWalker(c *Context, typ *target.Type) Walker {
	for _, reg := range c.Registry.Walkers() {
		w := newCommand(reg, reg.Names[0]).(Walker)
		declared, err := c.Target.LookupType(w.WalkType())
		if err != nil {
			continue
		}
		if declared.CanonicalName() == typ.CanonicalName() {
			return w
		}
	}
	return nil
}

// WalkerTable renders the table of registered walkers and the types they
// accept.
func WalkerTable(c *Context) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, "The following types have walkers:")
	fmt.Fprintf(&sb, "\t%-20s %-20s\n", "WALKER", "TYPE")
	for _, reg := range c.Registry.Walkers() {
		w := reg.New().(Walker)
		fmt.Fprintf(&sb, "\t%-20s %-20s\n", reg.Names[0], w.WalkType())
	}
	return sb.String()
}
