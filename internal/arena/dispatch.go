package arena

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/arena/internal/llm"
	"github.com/agenthands/arena/internal/model"
)

var (
	ErrNoProviders = errors.New("no providers to dispatch")
	ErrBadTimeout  = errors.New("per-provider timeout must be positive")
)

// Dispatch sends the question to every provider concurrently, each call
// racing its own deadline. It returns exactly one outcome per provider:
// a slow or stuck provider becomes a timeout, an erroring one becomes a
// failure, and neither ever aborts the batch. The only error returns are
// configuration-level (empty provider set, non-positive timeout).
func Dispatch(ctx context.Context, question model.Question, providers map[string]llm.Client, timeout time.Duration) (model.ResultSet, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}
	if timeout <= 0 {
		return nil, ErrBadTimeout
	}

	var mu sync.Mutex
	results := make(model.ResultSet, len(providers))

	g, ctx := errgroup.WithContext(ctx)
	for name, client := range providers {
		name, client := name, client
		g.Go(func() error {
			outcome := callOne(ctx, client, question.Text, timeout)

			// Each goroutine owns its key and writes it exactly once.
			mu.Lock()
			results[name] = outcome
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results, nil
}

// callOne runs a single provider call against its deadline and resolves it
// to a terminal outcome. The reply channel is buffered so a call that
// finishes after the deadline parks its result there and is discarded
// rather than racing the timeout's outcome.
func callOne(ctx context.Context, client llm.Client, prompt string, timeout time.Duration) model.Outcome {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)

	start := time.Now()
	go func() {
		text, err := client.Generate(callCtx, prompt)
		done <- reply{text: text, err: err}
	}()

	select {
	case <-callCtx.Done():
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return model.TimedOut()
		}
		return model.Failed(callCtx.Err().Error())

	case r := <-done:
		switch {
		case errors.Is(r.err, context.DeadlineExceeded):
			return model.TimedOut()
		case r.err != nil:
			return model.Failed(r.err.Error())
		case r.text == "":
			return model.Failed("empty response")
		}
		return model.Succeeded(r.text, time.Since(start))
	}
}
