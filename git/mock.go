package git

import (
	"context"
	"fmt"
	"sync"
)

// MockCall records one Run invocation on a mock runner.
type MockCall struct {
	Dir  string
	Env  []string
	Name string
	Args []string
}

// SequentialMockRunner replays queued outputs in call order and records
// every call for assertions. It is safe for concurrent use.
type SequentialMockRunner struct {
	mu      sync.Mutex
	outputs []mockResult
	calls   []MockCall
}

type mockResult struct {
	output string
	err    error
}

// NewSequentialMockRunner creates an empty mock runner.
func NewSequentialMockRunner() *SequentialMockRunner {
	return &SequentialMockRunner{}
}

// AddOutput queues the result returned by the next unanswered Run call.
func (m *SequentialMockRunner) AddOutput(output string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outputs = append(m.outputs, mockResult{output: output, err: err})
}

// Calls returns a copy of the calls recorded so far.
func (m *SequentialMockRunner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// Run implements Runner.
func (m *SequentialMockRunner) Run(_ context.Context, dir string, env []string, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{
		Dir:  dir,
		Env:  append([]string(nil), env...),
		Name: name,
		Args: append([]string(nil), args...),
	})
	if len(m.calls) > len(m.outputs) {
		return "", fmt.Errorf("unexpected command %s %v", name, args)
	}
	res := m.outputs[len(m.calls)-1]
	return res.output, res.err
}
