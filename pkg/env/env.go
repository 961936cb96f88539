// Package env keeps names of environment variables with special significance to
// sdb.
package env

// Environment variables with special significance to sdb.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	HOME                = "HOME"
	SDB_HISTORY_FILE    = "SDB_HISTORY_FILE"
	SDB_TEST_TIME_SCALE = "SDB_TEST_TIME_SCALE"
)
