package arena

import (
	"context"
	"sync"
	"time"
)

// fakeClient is a scripted provider. With delay set it waits, honoring the
// context; with ignoreCtx it sleeps through cancellation and completes
// anyway, which is how the late-result tests simulate a transport that
// cannot be aborted.
type fakeClient struct {
	reply     string
	err       error
	delay     time.Duration
	ignoreCtx bool

	mu      sync.Mutex
	prompts []string
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.delay > 0 {
		if f.ignoreCtx {
			time.Sleep(f.delay)
		} else {
			select {
			case <-time.After(f.delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// scriptedClient replies from a queue, one entry per call. The arbiter
// plays two roles in a round (question generator, then judge), so its fake
// needs different answers per call.
type scriptedClient struct {
	mu      sync.Mutex
	replies []string
	prompts []string
}

func (s *scriptedClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.replies) == 0 {
		return "", context.Canceled
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedClient) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

func (s *scriptedClient) allPrompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeClient) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}
