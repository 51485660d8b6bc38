package dev

import (
	"reflect"
	"strings"
	"testing"

	"github.com/PancyStudios/MaxisGo/pkg/relay"
)

func TestStripCodeBlock(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1 + 1", "1 + 1"},
		{"```go\nlen(\"abc\")\n```", "len(\"abc\")"},
		{"```\nx := 2\n```", "x := 2"},
	}
	for _, tt := range tests {
		if got := stripCodeBlock(tt.in); got != tt.want {
			t.Errorf("stripCodeBlock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	if got := formatResult(reflect.Value{}); got != "nil" {
		t.Errorf("formatResult(invalid) = %q, want nil", got)
	}
	if got := formatResult(reflect.ValueOf(42)); got != "42" {
		t.Errorf("formatResult(42) = %q, want 42", got)
	}
	long := formatResult(reflect.ValueOf(strings.Repeat("a", 3000)))
	if !strings.HasSuffix(long, "... (truncado)") || len(long) != maxEvalOutput+len("... (truncado)") {
		t.Errorf("formatResult(long) was not truncated: len %d", len(long))
	}
}

func TestRelayLabel(t *testing.T) {
	if got := relayLabel(nil); got != "⚪ | Desactivado" {
		t.Errorf("relayLabel(nil) = %q", got)
	}
	srv := relay.NewServer("127.0.0.1:0")
	if got := relayLabel(srv); got != "🟡 | Sin peer" {
		t.Errorf("relayLabel(server) = %q", got)
	}
}
