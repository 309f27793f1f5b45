package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/agenthands/arena/internal/config"
	"github.com/agenthands/arena/internal/llm"
)

// Registry holds the resolved name -> client mapping for one process.
// The arbiter is one of the configured providers doing double duty; it
// competes like the rest and additionally judges the round.
type Registry struct {
	clients map[string]llm.Client
	arbiter string
}

// Build constructs a client per configured provider. The config must have
// been validated first.
func Build(ctx context.Context, cfg *config.Config) (*Registry, error) {
	clients := make(map[string]llm.Client, len(cfg.Providers))
	for _, p := range cfg.Providers {
		c, err := llm.New(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("initializing provider %q: %w", p.Name, err)
		}
		clients[p.Name] = c
	}
	return &Registry{clients: clients, arbiter: cfg.Arena.Arbiter}, nil
}

// Clients returns the full provider mapping used for the fan-out.
func (r *Registry) Clients() map[string]llm.Client {
	return r.clients
}

// Arbiter returns the judge client.
func (r *Registry) Arbiter() llm.Client {
	return r.clients[r.arbiter]
}

// ArbiterName returns the configured arbiter's provider name.
func (r *Registry) ArbiterName() string {
	return r.arbiter
}

// Names returns the provider names in sorted order for display.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.clients))
	for n := range r.clients {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
