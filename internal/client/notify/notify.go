// Package notify surfaces short, user-facing status messages (the console's
// equivalent of toast notifications).
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Console prints one line per message to w.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Success(_ context.Context, msg string) {
	c.write("✓", msg)
}

func (c *Console) Error(_ context.Context, msg string) {
	c.write("✗", msg)
}

func (c *Console) write(mark, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s %s\n", mark, msg)
}

// Nop discards every message.
type Nop struct{}

func (Nop) Success(context.Context, string) {}
func (Nop) Error(context.Context, string)   {}

// Recorder keeps messages in memory; it is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *Recorder) Success(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *Recorder) Error(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}
