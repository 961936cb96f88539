package cmds

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/target"
)

// Coerce converts objects to a pointer type, more conservatively than
// cast: integers and void pointers are reinterpreted, and a value of the
// pointed-to type is replaced by its address.
type Coerce struct {
	sdb.Base
	typeName string
}

var coerceReg = &sdb.Registration{
	Names:   []string{"coerce"},
	Usage:   "coerce <type>",
	Summary: "convert every object of the pipeline to a pointer type",
	New:     func() sdb.Command { return &Coerce{} },
}

func (cmd *Coerce) Parse(args []string) error {
	args, err := remainderArgs(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return &sdb.CommandArgumentsError{
			Command: cmd.Name,
			Detail:  "the following arguments are required: <type>",
		}
	}
	cmd.typeName = joinRemainder(args)
	return nil
}

func (cmd *Coerce) Run(c *sdb.Context, in sdb.Stream) sdb.Stream {
	return func(yield func(target.Object) bool) {
		typ, err := c.Target.LookupType(cmd.typeName)
		if err != nil {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: fmt.Sprintf("could not find type '%s'", cmd.typeName),
			})
		}
		if typ.Canonical().Kind != target.KindPointer {
			sdb.Throw(&sdb.CommandError{
				Command: cmd.Name,
				Message: fmt.Sprintf("can only coerce to pointer types, not %s", typ),
			})
		}
		for obj := range in {
			if !yield(cmd.coerce(c, obj, typ)) {
				return
			}
		}
	}
}

func (cmd *Coerce) coerce(c *sdb.Context, obj target.Object, typ *target.Type) target.Object {
	if obj.Type().String() == typ.String() {
		return obj
	}
	can := obj.Type().Canonical()
	switch {
	case can.Kind == target.KindPointer && can.Elem.Kind == target.KindVoid,
		can.Kind == target.KindInt:
		cast, err := obj.Cast(typ)
		if err != nil {
			sdb.Throw(&sdb.CommandError{Command: cmd.Name, Message: err.Error()})
		}
		return cast
	}
	if target.PointerName(obj.Type().CanonicalName()) == typ.CanonicalName() {
		ptr, err := obj.AddressOf()
		if err == nil {
			return ptr
		}
	}
	sdb.Throw(&sdb.CommandError{
		Command: cmd.Name,
		Message: fmt.Sprintf("can not coerce %s to %s", obj.Type(), typ),
	})
	return target.Object{}
}
