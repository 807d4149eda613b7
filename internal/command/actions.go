package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MEKXH/requisition/internal/render"
	"github.com/MEKXH/requisition/internal/requisition"
)

const inputClosed = "Input closed; requisition not submitted."

// SubmitCommand implements selection 1: collect and submit a requisition.
type SubmitCommand struct{}

func (c *SubmitCommand) Key() string         { return "1" }
func (c *SubmitCommand) Description() string { return "Add new requisition" }

func (c *SubmitCommand) Execute(ctx context.Context, env Env) Result {
	p := env.Prompter

	answers := make([]string, 0, 3)
	for _, label := range []string{"\nEnter date: ", "Enter staff ID: ", "Enter staff name: "} {
		answer, err := p.Ask(ctx, label)
		if err != nil {
			return abandoned(err)
		}
		answers = append(answers, answer)
	}

	draft := env.Ledger.NewDraft(answers[0], answers[1], answers[2])
	p.Say("\nPrinting Staff Information:")
	p.Say("Date: " + answers[0])
	p.Say("Staff ID: " + answers[1])
	p.Say("Staff name: " + answers[2])
	p.Say("Requisition ID: " + draft.ID())

	for {
		name, err := p.Ask(ctx, fmt.Sprintf("\nEnter item #%d name (or 'done' to finish): ", draft.Position()))
		if err != nil {
			return abandoned(err)
		}
		if requisition.IsDone(name) {
			break
		}
		price, err := p.Ask(ctx, fmt.Sprintf("Enter item #%d price: ", draft.Position()))
		if err != nil {
			return abandoned(err)
		}
		if err := draft.AddItem(name, price); err != nil {
			p.Say("Invalid item price - must be a number")
		}
	}

	p.Say("Total price: " + render.Money(env.Currency, draft.Total()))

	record, err := env.Ledger.Commit(draft)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Content: "\n" + strings.TrimRight(render.Outcome(record, env.Currency), "\n")}
}

func abandoned(err error) Result {
	if errors.Is(err, io.EOF) {
		return Result{Content: inputClosed, Exit: true}
	}
	return Result{Err: err}
}

// UpdateCommand implements selection 2: change the status of a requisition.
type UpdateCommand struct{}

func (c *UpdateCommand) Key() string         { return "2" }
func (c *UpdateCommand) Description() string { return "Update requisition status" }

func (c *UpdateCommand) Execute(ctx context.Context, env Env) Result {
	p := env.Prompter

	id, err := p.Ask(ctx, "\nEnter requisition ID: ")
	if err != nil {
		return closedOr(err)
	}
	id = strings.TrimSpace(id)
	if _, ok := env.Ledger.Find(id); !ok {
		return Result{Content: "Requisition not found"}
	}

	status, err := p.Ask(ctx, "Enter new status: ")
	if err != nil {
		return closedOr(err)
	}

	record, err := env.Ledger.UpdateStatus(id, status)
	switch {
	case errors.Is(err, requisition.ErrNotFound):
		return Result{Content: "Requisition not found"}
	case errors.Is(err, requisition.ErrInvalidStatus):
		return Result{Content: "Invalid status"}
	case err != nil:
		return Result{Err: err}
	}
	return Result{Content: fmt.Sprintf("Successfully updated status of requisition %s to %s", record.ID, record.Status)}
}

func closedOr(err error) Result {
	if errors.Is(err, io.EOF) {
		return Result{Exit: true}
	}
	return Result{Err: err}
}

// ListCommand implements selection 3: show every requisition.
type ListCommand struct{}

func (c *ListCommand) Key() string         { return "3" }
func (c *ListCommand) Description() string { return "Display all requisitions" }

func (c *ListCommand) Execute(_ context.Context, env Env) Result {
	records := env.Ledger.List()
	if len(records) == 0 {
		return Result{Content: "\nNo requisitions submitted yet."}
	}
	return Result{Content: "\n" + render.Header("Requisitions") + "\n\n" + render.Table(records, env.Currency)}
}

// StatisticsCommand implements selection 4: count requisitions by status.
type StatisticsCommand struct{}

func (c *StatisticsCommand) Key() string         { return "4" }
func (c *StatisticsCommand) Description() string { return "Display requisition statistics" }

func (c *StatisticsCommand) Execute(_ context.Context, env Env) Result {
	stats := env.Ledger.Statistics()
	if env.Renderer == nil {
		return Result{Content: "\nRequisition statistics:\n" + strings.TrimRight(render.StatisticsText(stats), "\n")}
	}
	return Result{Content: render.Markdown(render.StatisticsMarkdown(stats), env.Renderer)}
}

// ExitCommand implements selection 5: leave the menu.
type ExitCommand struct{}

func (c *ExitCommand) Key() string         { return "5" }
func (c *ExitCommand) Description() string { return "Exit" }

func (c *ExitCommand) Execute(_ context.Context, _ Env) Result {
	return Result{Exit: true}
}
