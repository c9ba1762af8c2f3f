package kinds

import (
	"bytes"
	"testing"
)

func TestKindsCommand_PrintsSupportedKinds(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() error = %v", err)
	}

	expected := `area (terminal)
automation (terminal)
config_entry (terminal)
device
entity
group (terminal)
scene (terminal)
script (terminal)
`

	if out.String() != expected {
		t.Fatalf("output = %q, want %q", out.String(), expected)
	}
}
