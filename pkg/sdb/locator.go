package sdb

import (
	"fmt"
	"strings"

	"github.com/delphix/sdb-go/pkg/target"
)

// InputHandler converts one input type accepted by a locator.
type InputHandler struct {
	// Type is the input type name the handler accepts.
	Type string
	// Locate yields the located objects for one input object.
	Locate func(c *Context, obj target.Object) Stream
}

// Locator produces objects of a fixed output type from assorted inputs.
// Each input value is dispatched independently: the first declared
// handler whose type matches wins, then identity if the value already
// has the output type, then a registered walker for the value's type
// with every element cast to the output type.
type Locator interface {
	Command
	OutputType() string
	Handlers() []InputHandler
}

// NoInputProducer is implemented by locators that can produce output
// with no input at all, typically by walking a well-known root in the
// target.
type NoInputProducer interface {
	NoInput(c *Context) Stream
}

// Locate drives l's per-value dispatch over the input stream. Locator
// commands call it from Run.
func Locate(c *Context, l Locator, in Stream) Stream {
	return func(yield func(target.Object) bool) {
		name := l.base().Name
		out, err := c.Target.LookupType(l.OutputType())
		if err != nil {
			Throw(&CommandError{Command: name, Message: err.Error()})
		}
		got := false
		for obj := range in {
			got = true
			if h := matchHandler(c, l, obj.Type()); h != nil {
				if !forward(h.Locate(c, obj), yield) {
					return
				}
				continue
			}
			if obj.Type().CanonicalName() == out.CanonicalName() {
				if !yield(obj) {
					return
				}
				continue
			}
			if w := FindWalker(c, obj.Type()); w != nil {
				more := true
				w.Walk(c, obj)(func(elem target.Object) bool {
					cast, err := elem.Cast(out)
					if err != nil {
						Throw(&CommandError{Command: name, Message: err.Error()})
					}
					more = yield(cast)
					return more
				})
				if !more {
					return
				}
				continue
			}
			fmt.Fprint(c.Out, HandlerTable(l))
			Throw(&CommandError{
				Command: name,
				Message: fmt.Sprintf("no handler for input of type %s", obj.Type()),
			})
		}
		if !got {
			if p, ok := l.(NoInputProducer); ok {
				forward(p.NoInput(c), yield)
				return
			}
			Throw(&CommandError{Command: name, Message: "command requires an input"})
		}
	}
}

func matchHandler(c *Context, l Locator, typ *target.Type) *InputHandler {
	for _, h := range l.Handlers() {
		declared, err := c.Target.LookupType(h.Type)
		if err != nil {
			continue
		}
		if declared.CanonicalName() == typ.CanonicalName() {
			return &h
		}
	}
	return nil
}

// HandlerTable renders the table of input types a locator accepts.
func HandlerTable(l Locator) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The following types are accepted by %s:\n", l.base().Name)
	fmt.Fprintf(&sb, "\t%-20s\n", "TYPE")
	for _, h := range l.Handlers() {
		fmt.Fprintf(&sb, "\t%-20s\n", h.Type)
	}
	fmt.Fprintf(&sb, "\t%-20s\n", l.OutputType())
	return sb.String()
}
