package sdb

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Registration describes a command to a Registry.
type Registration struct {
	// Names the command answers to. The first is the primary name, the
	// rest are aliases.
	Names []string
	// Usage is the one-line synopsis, starting with the primary name.
	Usage string
	// Summary is the one-line description shown in the command table.
	Summary string
	// Description is the long-form help body, if any.
	Description string
	// New returns a fresh instance of the command.
	New func() Command
}

// Registry maps command names to registrations and records which
// commands implement the walker and pretty-printer roles. Commands are
// expected to be registered once each, at session setup.
type Registry struct {
	regs     map[string]*Registration
	order    []*Registration
	walkers  []*Registration
	printers []*Registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{regs: make(map[string]*Registration)}
}

// Register adds reg under each of its names, overwriting any earlier
// registration of the same name.
func (r *Registry) Register(reg *Registration) {
	for _, name := range reg.Names {
		r.regs[name] = reg
	}
	r.order = append(r.order, reg)
	proto := reg.New()
	if _, ok := proto.(Walker); ok {
		r.walkers = append(r.walkers, reg)
	}
	if _, ok := proto.(PrettyPrinter); ok {
		r.printers = append(r.printers, reg)
	}
}

// Lookup resolves a command name or alias.
func (r *Registry) Lookup(name string) (*Registration, bool) {
	reg, ok := r.regs[name]
	return reg, ok
}

// New instantiates the command registered under name.
func (r *Registry) New(name string) (Command, error) {
	reg, ok := r.regs[name]
	if !ok {
		return nil, &CommandNotFoundError{Command: name}
	}
	return newCommand(reg, name), nil
}

func newCommand(reg *Registration, name string) Command {
	cmd := reg.New()
	b := cmd.base()
	b.Name = name
	b.Reg = reg
	return cmd
}

// Registrations returns all registrations in registration order.
func (r *Registry) Registrations() []*Registration { return r.order }

// Names returns every registered name and alias, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.regs))
	for name := range r.regs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Walkers returns the registrations of walker commands, in registration
// order.
func (r *Registry) Walkers() []*Registration { return r.walkers }

// Printers returns the registrations of pretty-printer commands, in
// registration order.
func (r *Registry) Printers() []*Registration { return r.printers }

// Help writes the full help text of a registered command.
func Help(w io.Writer, reg *Registration) {
	proto := reg.New()
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintf(w, "    %s\n", reg.Usage)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s\n", reg.Summary)
	fmt.Fprintln(w)
	if len(reg.Names) > 1 {
		fmt.Fprintln(w, "ALIASES")
		fmt.Fprintf(w, "    %s\n", strings.Join(reg.Names, ", "))
		fmt.Fprintln(w)
	}
	if it, ok := proto.(InputTyped); ok && it.InputType() != "" {
		fmt.Fprintln(w, "INPUT TYPE")
		fmt.Fprintf(w, "    This command primarily accepts inputs of type %s.\n", it.InputType())
		fmt.Fprintln(w)
	}
	if wk, ok := proto.(Walker); ok {
		fmt.Fprintln(w, "WALKER")
		fmt.Fprintf(w, "    This is a Walker for %s.  See 'help walk'.\n", wk.WalkType())
		fmt.Fprintln(w)
	}
	if pp, ok := proto.(PrettyPrinter); ok {
		fmt.Fprintln(w, "PRETTY PRINTER")
		fmt.Fprintf(w, "    This is a Pretty Printer for %s.  See 'help pp'.\n", pp.PrintType())
		fmt.Fprintln(w)
	}
	if l, ok := proto.(Locator); ok {
		fmt.Fprintln(w, "LOCATOR")
		fmt.Fprintf(w, "    This is a Locator for %s.\n", l.OutputType())
		fmt.Fprintln(w)
	}
	if reg.Description != "" {
		fmt.Fprintln(w, reg.Description)
	}
}
