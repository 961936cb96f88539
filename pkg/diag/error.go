package diag

import (
	"fmt"

	"github.com/delphix/sdb-go/pkg/strutil"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d-%d in %s: %s",
		e.Type, e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: %s%s%s\n",
		strutil.Title(e.Type), messageStart, e.Message, messageEnd)
	return header + e.Context.ShowCompact(indent+"  ")
}

// Variables controlling the style of the error message.
var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)
