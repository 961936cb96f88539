package sdb

import "github.com/delphix/sdb-go/pkg/target"

// dispatch wraps one pipeline stage, coercing the input stream to the
// command's declared input type where a cheap conversion exists: a void
// pointer is cast to the declared pointer type, and a value whose
// pointer type equals the declared type is replaced by its address. The
// conversion is picked by peeking at the first object only; streams are
// homogeneous in practice, and a mixed stream still gets caught by the
// command's own type check. Non-pointer declared types never coerce.
//
// Locators are exempt, since per-value dispatch is their whole purpose.
func dispatch(c *Context, cmd Command, in Stream) Stream {
	if _, ok := cmd.(Locator); ok {
		return cmd.Run(c, in)
	}
	it, ok := cmd.(InputTyped)
	if !ok || it.InputType() == "" {
		return cmd.Run(c, in)
	}
	return func(yield func(target.Object) bool) {
		expected, err := c.Target.LookupType(it.InputType())
		if err != nil {
			// The command's own validation reports the bad type.
			forward(cmd.Run(c, in), yield)
			return
		}
		if expected.Canonical().Kind != target.KindPointer {
			forward(cmd.Run(c, in), yield)
			return
		}
		first, rest, ok := peek(in)
		if !ok {
			forward(cmd.Run(c, Empty), yield)
			return
		}
		got := first.Type().Canonical()
		switch {
		case first.Type().CanonicalName() == expected.CanonicalName():
			forward(cmd.Run(c, rest), yield)
		case got.Kind == target.KindPointer && got.Elem.Canonical().Kind == target.KindVoid:
			forward(cmd.Run(c, castStage(expected, rest)), yield)
		case expected.Canonical().Elem.CanonicalName() == first.Type().CanonicalName():
			forward(cmd.Run(c, addressStage(rest)), yield)
		default:
			forward(cmd.Run(c, rest), yield)
		}
	}
}

// castStage casts every object of in to typ. Raw integers piped into a
// command that wants pointers take this path.
func castStage(typ *target.Type, in Stream) Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			cast, err := obj.Cast(typ)
			if err != nil {
				Throw(&CommandError{Command: "cast", Message: err.Error()})
			}
			if !yield(cast) {
				return
			}
		}
	}
}

// addressStage replaces every object of in with a pointer to it. Objects
// without an address pass through unchanged and are left to the
// command's own type check.
func addressStage(in Stream) Stream {
	return func(yield func(target.Object) bool) {
		for obj := range in {
			ptr, err := obj.AddressOf()
			if err != nil {
				ptr = obj
			}
			if !yield(ptr) {
				return
			}
		}
	}
}
