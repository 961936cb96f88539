package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/delphix/sdb-go/pkg/buildinfo"
	"github.com/delphix/sdb-go/pkg/sdb"
	"github.com/delphix/sdb-go/pkg/store"
	"github.com/delphix/sdb-go/pkg/target"
)

const prompt = "sdb> "

// Config keeps what a session needs besides the file descriptors.
type Config struct {
	Target   *target.Target
	Registry *sdb.Registry
	Quiet    bool
}

// Interact runs the interactive mode: print a banner, then repeatedly
// read a line, evaluate it and report errors, until EOF or an exit
// command. A reported error never ends the session.
func Interact(fds [3]*os.File, cfg *Config) {
	sess := sdb.NewSession(cfg.Target, cfg.Registry)
	sess.Out = fds[1]
	sess.Err = fds[2]

	if !cfg.Quiet {
		fmt.Fprintf(fds[2], "sdb %s: type 'help' for a list of commands\n",
			buildinfo.Value.Version)
	}

	history := openHistory(fds[2], cfg.Quiet)
	if c, ok := history.(io.Closer); ok {
		defer c.Close()
	}
	sess.History = history

	ed := newMinEditor(fds[0], fds[2])
	for {
		line, err := ed.ReadLine()
		line = strings.TrimSpace(line)
		if line != "" {
			if addErr := history.Add(line); addErr != nil {
				logger.Println("history add:", addErr)
			}
			ctx, done := interruptible(context.Background())
			_, quit := sess.Eval(ctx, line)
			done()
			if quit {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				logger.Println("read:", err)
			}
			fmt.Fprintln(fds[2])
			return
		}
	}
}

// openHistory opens the persistent command history, degrading to an
// in-memory store with a warning when the database cannot be used.
func openHistory(stderr io.Writer, quiet bool) sdb.HistoryStore {
	path, err := historyPath()
	if err == nil {
		var db *store.DB
		db, err = store.Open(path)
		if err == nil {
			return db
		}
	}
	if !quiet {
		fmt.Fprintln(stderr, "warning: cannot open command history:", err)
		fmt.Fprintln(stderr, "history will not persist across sessions")
	}
	return &store.Mem{}
}
