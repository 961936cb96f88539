// Package logutil provides a shared debug logging facility. Loggers obtained
// from GetLogger discard their output until SetOutput or SetOutputFile points
// them somewhere.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var mutex sync.Mutex

var (
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger returns a logger that writes to the current output with the given
// prefix.
func GetLogger(prefix string) *log.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, including those to be created
// in the future, to the given writer. It closes the file previously set by
// SetOutputFile, if any.
func SetOutput(newOut io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile is like SetOutput, but opens the named file for appending
// first. An empty name reverts the output to discard.
func SetOutputFile(fname string) error {
	mutex.Lock()
	defer mutex.Unlock()
	closeOutFile()
	if fname == "" {
		out = io.Discard
	} else {
		file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %v", fname, err)
		}
		outFile = file
		out = file
	}
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
