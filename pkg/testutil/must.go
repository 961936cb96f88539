package testutil

import "os"

// MustWriteFile writes data to a file, and panics if an error occurs. It
// creates the file with 0644.
func MustWriteFile(filename, data string) {
	err := os.WriteFile(filename, []byte(data), 0644)
	if err != nil {
		panic(err)
	}
}

// MustCreateEmpty creates empty files, and panics if an error occurs.
func MustCreateEmpty(names ...string) {
	for _, name := range names {
		file, err := os.Create(name)
		if err != nil {
			panic(err)
		}
		file.Close()
	}
}

// Must panics if the error value is not nil. It is typically used like
// this:
//
//	testutil.Must(aFunction())
//
// where aFunction returns a single error value. This is useful with
// functions like os.Mkdir to succinctly ensure the test fails to proceed
// if a "can't happen" failure does, in fact, happen.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
