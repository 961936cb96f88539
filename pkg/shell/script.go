package shell

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/delphix/sdb-go/pkg/sdb"
)

// Script evaluates lines from a non-terminal stdin one after another.
// Failed lines are reported and skipped, like in the interactive mode,
// but there is no prompt, no banner and no history.
func Script(fds [3]*os.File, cfg *Config) {
	sess := sdb.NewSession(cfg.Target, cfg.Registry)
	sess.Out = fds[1]
	sess.Err = fds[2]

	in := bufio.NewScanner(fds[0])
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		ctx, done := interruptible(context.Background())
		_, quit := sess.Eval(ctx, line)
		done()
		if quit {
			return
		}
	}
	if err := in.Err(); err != nil {
		logger.Println("read:", err)
	}
}
