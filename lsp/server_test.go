package lsp

import (
	"strings"
	"testing"

	"github.com/javaplay/javaplay/playground"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc, err := playground.NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return NewServer(svc, "test")
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantCount int
	}{
		{
			name: "valid program",
			text: `public class Main {
    public static void main(String[] args) {
        System.out.println("ok");
    }
}`,
			wantCount: 0,
		},
		{
			name:      "missing expression",
			text:      "int x = ;",
			wantCount: 1,
		},
		{
			name:      "unclosed method",
			text:      "class A {\n    void f() {\n}",
			wantCount: 1,
		},
		{
			name:      "empty document",
			text:      "",
			wantCount: 0,
		},
	}

	ls := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ls.diagnose(tt.text)
			if len(got) != tt.wantCount {
				t.Fatalf("diagnose() returned %d diagnostics, want %d: %+v", len(got), tt.wantCount, got)
			}
			for _, d := range got {
				if d.Range.Start.Line != 0 || d.Range.Start.Character != 0 {
					t.Errorf("Range.Start = %+v, want the document start", d.Range.Start)
				}
				if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
					t.Errorf("Severity = %v, want error", d.Severity)
				}
				if !strings.HasPrefix(d.Message, "Error: ") {
					t.Errorf("Message = %q, want prefix %q", d.Message, "Error: ")
				}
			}
		})
	}
}

// A successful check must publish an empty list, not nil, so that clients
// clear earlier diagnostics.
func TestDiagnoseClearsWithEmptyList(t *testing.T) {
	ls := newTestServer(t)
	if got := ls.diagnose(`System.out.println(1);`); got == nil {
		t.Error("diagnose() = nil, want an empty slice")
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"file:///tmp/Main.java", "/tmp/Main.java"},
		{"file:///tmp/a%20b/Main.java", "/tmp/a b/Main.java"},
		{"untitled:Untitled-1", "untitled:Untitled-1"},
	}
	for _, tt := range tests {
		if got := displayPath(tt.input); got != tt.want {
			t.Errorf("displayPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
