package hantl

import (
	"context"
	"sync/atomic"
	"time"
)

// InferenceProvider is the interface for inference backends. Infer blocks
// until the backend produces text or fails; it is not assumed to honor a
// deadline on its own, which is why the Executor exists.
type InferenceProvider interface {
	Infer(ctx context.Context, msgs []Message, cfg GenerationConfig) (string, error)
}

// Executor runs one inference call with an upper bound on wall-clock
// latency. The call executes on its own goroutine so a hung backend cannot
// block the caller past cfg.Deadline; when the deadline elapses first the
// goroutine is abandoned and its eventual outcome is discarded.
type Executor struct {
	provider  InferenceProvider
	abandoned atomic.Int64
}

// NewExecutor creates an Executor around the given provider.
func NewExecutor(provider InferenceProvider) *Executor {
	return &Executor{provider: provider}
}

type execOutcome struct {
	text string
	err  error
}

// Run invokes the provider and races it against cfg.Deadline. If the call
// finishes first its result or error is returned; if the deadline elapses
// first Run returns a TimeoutError immediately. At most one outcome ever
// reaches the caller: a late result from an abandoned call lands in a
// buffered channel nobody reads and is dropped.
func (e *Executor) Run(ctx context.Context, msgs []Message, cfg GenerationConfig) (string, error) {
	// Buffered so an abandoned call can complete its send and exit.
	out := make(chan execOutcome, 1)

	// The inference call keeps the caller's context values but not its
	// cancellation: abandonment detaches, it does not interrupt.
	callCtx := context.WithoutCancel(ctx)
	go func() {
		text, err := e.provider.Infer(callCtx, msgs, cfg)
		out <- execOutcome{text: text, err: err}
	}()

	timer := time.NewTimer(cfg.Deadline)
	defer timer.Stop()

	select {
	case o := <-out:
		return o.text, o.err
	case <-timer.C:
		e.abandoned.Add(1)
		return "", &TimeoutError{Deadline: cfg.Deadline}
	case <-ctx.Done():
		e.abandoned.Add(1)
		return "", ctx.Err()
	}
}

// Abandoned reports how many executions have been detached after missing
// their deadline (or losing their caller). The count is cumulative;
// abandoned calls run to completion on their own and are never killed.
func (e *Executor) Abandoned() int64 {
	return e.abandoned.Load()
}
