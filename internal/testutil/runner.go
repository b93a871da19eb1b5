package testutil

import (
	"context"
	"sync"
)

// RecordingRunner is a toolexec.Runner that records every call instead of
// starting a process. Err, when set, decides the error returned per call.
type RecordingRunner struct {
	Err func(name string, args []string) error

	mu    sync.Mutex
	calls [][]string
}

// Run implements toolexec.Runner.
func (r *RecordingRunner) Run(_ context.Context, name string, args ...string) error {
	argv := append([]string{name}, args...)

	r.mu.Lock()
	r.calls = append(r.calls, argv)
	r.mu.Unlock()

	if r.Err != nil {
		return r.Err(name, args)
	}
	return nil
}

// Calls returns a copy of the recorded argument vectors in call order.
func (r *RecordingRunner) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.calls))
	copy(out, r.calls)
	return out
}
