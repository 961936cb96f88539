package store

import "sync"

// Mem is an in-memory history store. The session falls back to it when the
// history database cannot be opened, and tests use it directly.
type Mem struct {
	mu    sync.Mutex
	lines []string
}

// Add appends one line.
func (s *Mem) Add(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

// List returns all recorded lines, oldest first.
func (s *Mem) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]string, len(s.lines))
	copy(lines, s.lines)
	return lines, nil
}
