package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalizeBaseName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Lake Placid", "lake_placid"},
		{"  IRONMAN   Lake Placid  ", "ironman_lake_placid"},
		{"IRONMAN 70.3 Oceanside", "ironman_703_oceanside"},
		{"already_normal", "already_normal"},
		{"Tabs\tand\nnewlines", "tabs_and_newlines"},
		{"Côte d'Azur!", "cte_dazur"},
		{"???", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeBaseName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeBaseName(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConsoleAsk(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(strings.NewReader("  https://example.com/races/foo  \nlake placid\n"), &out)

	answer, err := console.Ask("Race page URL: ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "https://example.com/races/foo" {
		t.Errorf("expected trimmed URL, got %q", answer)
	}

	answer, err = console.Ask("Base name: ")
	if err != nil {
		t.Fatalf("second Ask failed: %v", err)
	}
	if answer != "lake placid" {
		t.Errorf("expected 'lake placid', got %q", answer)
	}

	if !strings.Contains(out.String(), "Race page URL: ") {
		t.Errorf("prompt not written to output: %q", out.String())
	}
}

func TestConsoleAskMissingFinalNewline(t *testing.T) {
	console := NewConsole(strings.NewReader("partial line"), &bytes.Buffer{})

	answer, err := console.Ask("? ")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer != "partial line" {
		t.Errorf("expected 'partial line', got %q", answer)
	}
}

func TestConsoleAskEmptyInput(t *testing.T) {
	console := NewConsole(strings.NewReader(""), &bytes.Buffer{})

	if _, err := console.Ask("? "); err == nil {
		t.Error("expected error on exhausted input")
	}
}
