package publish

import (
	"context"
	"sync"
)

// Call records one Publish invocation.
type Call struct {
	Subject string
	Body    []byte
	Attrs   map[string]string
}

// Recorder is an in-memory Publisher capturing invocations for
// assertions, optionally failing on demand. It stands in for a real
// broker in tests and examples.
type Recorder struct {
	// Err, when set, is returned by every Publish call after recording.
	Err error

	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) Publish(_ context.Context, subject string, body []byte, attrs map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Subject: subject, Body: body, Attrs: attrs})
	return r.Err
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}
