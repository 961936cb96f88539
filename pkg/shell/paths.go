package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/delphix/sdb-go/pkg/env"
)

// historyPath resolves the history database location. SDB_HISTORY_FILE
// overrides the default ~/.sdb_history.db.
func historyPath() (string, error) {
	if p := os.Getenv(env.SDB_HISTORY_FILE); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve history file: %v", err)
	}
	return filepath.Join(home, ".sdb_history.db"), nil
}
