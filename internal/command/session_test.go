package command

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MEKXH/requisition/internal/requisition"
)

func TestSession_RunsScenario(t *testing.T) {
	env, p := newEnv(
		"1", "2024-01-01", "S1", "Alice", "Pen", "2.50", "Paper", "1.00", "done",
		"9",
		"2", "10001", "Not Approved",
		"1", "2024-01-02", "S2", "Bob", "Laptop", "600", "done",
		"4",
		"5",
		"3",
	)

	if err := NewSession(nil, env).Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	stats := env.Ledger.Statistics()
	want := requisition.Statistics{Total: 2, Approved: 0, Pending: 1, NotApproved: 1}
	if stats != want {
		t.Fatalf("expected %+v, got %+v", want, stats)
	}
	out := p.output()
	if !strings.Contains(out, "Invalid selection") {
		t.Fatalf("expected invalid selection message:\n%s", out)
	}
	if !strings.Contains(out, "The total number of pending requisitions: 1") {
		t.Fatalf("expected statistics in output:\n%s", out)
	}
	if len(p.answers) != 1 {
		t.Fatalf("expected session to stop at exit, %d answers left", len(p.answers))
	}
}

func TestSession_EndOfInputStops(t *testing.T) {
	env, _ := newEnv("1", "2024-01-01")
	if err := NewSession(nil, env).Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if env.Ledger.Len() != 0 {
		t.Fatal("expected no submission")
	}
}

func TestSession_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	env := Env{
		Ledger:   requisition.NewLedger(),
		Prompter: NewLinePrompter(strings.NewReader("4\n"), &out),
		Currency: "$",
	}
	err := NewSession(nil, env).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSession_LinePrompter(t *testing.T) {
	input := strings.Join([]string{
		"1", "2024-03-03", "S7", "Carol", "Toner", "45.5", "done",
		"3",
		"5",
	}, "\r\n") + "\r\n"
	var out bytes.Buffer
	env := Env{
		Ledger:   requisition.NewLedger(),
		Prompter: NewLinePrompter(strings.NewReader(input), &out),
		Currency: "$",
	}

	if err := NewSession(nil, env).Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	record, ok := env.Ledger.Find("10001")
	if !ok {
		t.Fatal("expected requisition 10001")
	}
	if record.StaffName != "Carol" {
		t.Fatalf("expected carriage return trimmed, got %q", record.StaffName)
	}
	ref, _ := record.Reference()
	if ref != "S7001" {
		t.Fatalf("unexpected approval ref %q", ref)
	}
	text := out.String()
	for _, want := range []string{"Select action: ", "Enter item #1 name (or 'done' to finish): ", "Total price: $45.50", "S7001"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestSession_LinePrompterAcceptsLongLines(t *testing.T) {
	longName := strings.Repeat("x", 70000)
	input := strings.Join([]string{
		"1", "2024-03-04", "S1", "Alice", "Pen", "2.5", longName, "1", "done",
		"5",
	}, "\n")
	var out bytes.Buffer
	env := Env{
		Ledger:   requisition.NewLedger(),
		Prompter: NewLinePrompter(strings.NewReader(input), &out),
		Currency: "$",
	}

	if err := NewSession(nil, env).Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	record, ok := env.Ledger.Find("10001")
	if !ok {
		t.Fatal("expected requisition 10001")
	}
	if len(record.Items) != 2 || record.Items[1].Name != longName {
		t.Fatalf("expected long item name to be kept, got %d items", len(record.Items))
	}
	if !strings.Contains(out.String(), "Total price: $3.50") {
		t.Fatalf("expected total after long line, got tail: %s", out.String()[len(out.String())-200:])
	}
}
