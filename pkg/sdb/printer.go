package sdb

import (
	"fmt"
	"strings"

	"github.com/delphix/sdb-go/pkg/target"
)

// PrettyPrinter renders objects of one specific type in a friendlier
// format than the default rendering.
type PrettyPrinter interface {
	Command
	// PrintType is the input type the printer understands.
	PrintType() string
	// PrettyPrint renders the whole stream to c.Out.
	PrettyPrint(c *Context, in Stream)
}

// PrintInput feeds p the input stream with every object checked against
// the printer's declared type. Printer commands call it from Run; the
// check is interleaved with consumption, so objects already printed stay
// printed when a later object mismatches.
func PrintInput(c *Context, p PrettyPrinter, in Stream) {
	name := p.base().Name
	want, err := c.Target.LookupType(p.PrintType())
	if err != nil {
		Throw(&CommandError{Command: name, Message: err.Error()})
	}
	checked := func(yield func(target.Object) bool) {
		for obj := range in {
			if obj.Type().CanonicalName() != want.CanonicalName() {
				Throw(&CommandError{
					Command: name,
					Message: fmt.Sprintf("expected input of type %s, but received type %s",
						p.PrintType(), obj.Type()),
				})
			}
			if !yield(obj) {
				return
			}
		}
	}
	p.PrettyPrint(c, checked)
}

// FindPrinter returns an instance of the registered pretty-printer for
// typ, or nil if none handles its canonical type.
func FindPrinter(c *Context, typ *target.Type) PrettyPrinter {
	for _, reg := range c.Registry.Printers() {
		p := newCommand(reg, reg.Names[0]).(PrettyPrinter)
		declared, err := c.Target.LookupType(p.PrintType())
		if err != nil {
			continue
		}
		if declared.CanonicalName() == typ.CanonicalName() {
			return p
		}
	}
	return nil
}

// PrinterTable renders the table of registered pretty-printers and the
// types they print.
func PrinterTable(c *Context) string {
	var sb strings.Builder
	fmt.Fprintln(&sb, "The following types have pretty-printers:")
	fmt.Fprintf(&sb, "\t%-20s %-20s\n", "PRINTER", "TYPE")
	for _, reg := range c.Registry.Printers() {
		p := reg.New().(PrettyPrinter)
		fmt.Fprintf(&sb, "\t%-20s %-20s\n", reg.Names[0], p.PrintType())
	}
	return sb.String()
}
