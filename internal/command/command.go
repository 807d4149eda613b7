package command

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/MEKXH/requisition/internal/render"
	"github.com/MEKXH/requisition/internal/requisition"
)

// Env carries per-invocation context for a menu action.
type Env struct {
	Ledger   *requisition.Ledger
	Prompter Prompter
	Currency string
	Renderer render.Renderer // optional, for the statistics report
}

// Result is the output of a menu action.
type Result struct {
	Content string
	Exit    bool
	Err     error
}

// Command is the interface every menu action must implement.
type Command interface {
	// Key returns the selection that triggers the action (e.g. "1").
	Key() string
	// Description returns the menu label.
	Description() string
	// Execute runs the action, prompting through env.Prompter as needed.
	Execute(ctx context.Context, env Env) Result
}

// Registry holds registered menu actions and dispatches them.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// DefaultRegistry returns the five standard menu actions.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&SubmitCommand{})
	r.Register(&UpdateCommand{})
	r.Register(&ListCommand{})
	r.Register(&StatisticsCommand{})
	r.Register(&ExitCommand{})
	return r
}

// Register adds a command. Panics on duplicate keys.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.TrimSpace(cmd.Key())
	if _, dup := r.cmds[key]; dup {
		panic("command already registered: " + key)
	}
	r.cmds[key] = cmd
}

// Lookup resolves a raw menu selection.
func (r *Registry) Lookup(selection string) (Command, bool) {
	key := strings.TrimSpace(selection)
	if key == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[key]
	return cmd, ok
}

// List returns all registered commands sorted by key.
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Menu renders the selection prompt.
func (r *Registry) Menu() string {
	var sb strings.Builder
	sb.WriteString("\n-- WELCOME TO THE REQUISITION SYSTEM --\n\n")
	for _, cmd := range r.List() {
		sb.WriteString(cmd.Key() + ". " + cmd.Description() + "\n")
	}
	sb.WriteString("\nSelect action: ")
	return sb.String()
}
