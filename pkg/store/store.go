// Package store provides the debugger's persistent command history, backed
// by a bolt database file.
package store

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Each line lives under its own monotonic sequence number, so insertion
// order survives without rewriting earlier entries. Keys are big-endian so
// that bolt's byte order is the insertion order.
const bucketCmd = "cmd"

// DB is a bolt-backed history store.
type DB struct {
	db *bolt.DB
}

// Open opens or creates the history database at path. The file is locked
// while open; a second session gives up after a second.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

// Close releases the database file.
func (s *DB) Close() error {
	return s.db.Close()
}

// Add appends one line to the history.
func (s *DB) Add(line string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(line))
	})
}

// List returns all recorded lines, oldest first.
func (s *DB) List() ([]string, error) {
	var lines []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCmd))
		return b.ForEach(func(k, v []byte) error {
			lines = append(lines, string(v))
			return nil
		})
	})
	return lines, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
