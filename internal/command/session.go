package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Session drives the menu loop until the exit action runs or input ends.
type Session struct {
	registry *Registry
	env      Env
}

// NewSession creates a session over registry. A nil registry means DefaultRegistry.
func NewSession(registry *Registry, env Env) *Session {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Session{registry: registry, env: env}
}

// Run shows the menu and dispatches selections.
func (s *Session) Run(ctx context.Context) error {
	p := s.env.Prompter
	for {
		selection, err := p.Ask(ctx, s.registry.Menu())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd, ok := s.registry.Lookup(selection)
		if !ok {
			slog.Debug("invalid menu selection", "selection", selection)
			p.Say("Invalid selection")
			continue
		}

		result := cmd.Execute(ctx, s.env)
		if result.Content != "" {
			p.Say(result.Content)
		}
		if result.Err != nil {
			return result.Err
		}
		if result.Exit {
			return nil
		}
	}
}
