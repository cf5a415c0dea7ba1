// Package clipboard copies swatch values to the system clipboard and reports
// the outcome explicitly.
package clipboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"

	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

// Writer accepts a string value to place on a clipboard.
type Writer interface {
	Write(ctx context.Context, value string) error
}

// Result describes one copy attempt.
type Result struct {
	Value string
	OK    bool
	Err   error
}

// Message renders the user-facing status line for r.
func (r Result) Message() string {
	if r.OK {
		return fmt.Sprintf("%s copied!", r.Value)
	}
	return fmt.Sprintf("Copy %s failed: %v", r.Value, r.Err)
}

// Copy writes value through w and returns the outcome. Failures are never
// dropped; they are returned in Result.Err as a *errors.ClipboardError.
func Copy(ctx context.Context, w Writer, value string) Result {
	if w == nil {
		return Result{Value: value, Err: swatchyerrors.NewClipboardError(value, fmt.Errorf("no clipboard writer configured"))}
	}
	if err := w.Write(ctx, value); err != nil {
		return Result{Value: value, Err: swatchyerrors.NewClipboardError(value, err)}
	}
	return Result{Value: value, OK: true}
}

// System writes to the OS clipboard via atotto/clipboard.
type System struct{}

// NewSystem returns the OS clipboard writer.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found on this machine.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Write implements Writer.
func (s *System) Write(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(value)
}

// Memory is an in-process clipboard for tests and headless sessions.
type Memory struct {
	mu      sync.Mutex
	history []string
	fail    error
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// FailWith makes subsequent writes return err. A nil err restores success.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// Write implements Writer.
func (m *Memory) Write(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.history = append(m.history, value)
	return nil
}

// Last returns the most recent value and whether anything was written.
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return "", false
	}
	return m.history[len(m.history)-1], true
}

// History returns every successfully written value in order.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}
