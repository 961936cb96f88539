package sdb

// Thrown wraps an error raised by Throw, so that it can be recognized by
// Catch.
type Thrown struct {
	Wrapped error
}

func (t Thrown) Error() string {
	return "thrown: " + t.Wrapped.Error()
}

// Throw panics with err wrapped properly so that it can be catched by
// Catch. Commands use it to abort a pipeline from inside a stream, where
// no error return is available.
func Throw(err error) {
	panic(Thrown{err})
}

// Catch tries to catch an error thrown by Throw and stop the panic. If
// the panic is not caused by Throw, the panic is not stopped. It should
// be called directly from defer.
func Catch(perr *error) {
	r := recover()
	if r == nil {
		return
	}
	if exc, ok := r.(Thrown); ok {
		*perr = exc.Wrapped
	} else {
		panic(r)
	}
}

// PCall calls a function and catches anything it throws. It does not
// protect against panics not using Throw, nor can it distinguish between
// nothing thrown and Throw(nil).
func PCall(f func()) (e error) {
	defer Catch(&e)
	f()
	// If we reach here, f didn't throw anything.
	return nil
}
