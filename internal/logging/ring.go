package logging

import "sync"

// Ring is a fixed-size circular buffer of log lines. It is safe for
// concurrent use.
type Ring struct {
	mu    sync.Mutex
	buf   []string
	pos   int
	count int
}

// NewRing creates a ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		buf: make([]string, capacity),
	}
}

// Push adds a line, overwriting the oldest once full.
func (r *Ring) Push(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.pos] = line
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Lines returns all stored lines oldest first.
func (r *Ring) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return nil
	}
	result := make([]string, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Tail returns up to n of the most recent lines, oldest first.
func (r *Ring) Tail(n int) []string {
	lines := r.Lines()
	if n < len(lines) {
		return lines[len(lines)-n:]
	}
	return lines
}

// Last returns the most recent line, or "" if empty.
func (r *Ring) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return ""
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

// Len returns the number of stored lines.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
