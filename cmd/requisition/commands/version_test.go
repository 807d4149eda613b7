package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MEKXH/requisition/internal/version"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.Run(cmd, nil)

	if strings.TrimSpace(out.String()) != version.String() {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}
