package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javaplay/javaplay/config"
	"github.com/spf13/cobra"
)

const hello = `public class Main {
    public static void main(String[] args) {
        System.out.println("Hello");
    }
}`

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranslateCmd(t *testing.T) {
	out, err := execute(t, newTranslateCmd(), hello)
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	if !strings.Contains(out, `__log("Hello");`) {
		t.Errorf("output = %q, want the translated print", out)
	}
}

func TestTranslateCmdTrace(t *testing.T) {
	out, err := execute(t, newTranslateCmd(), hello, "--trace")
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	for _, want := range []string{"=== protect-literals ===", "=== invoke-entry ==="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTranslateCmdFields(t *testing.T) {
	src := "class Point {\n    static int made;\n    int x;\n}"
	out, err := execute(t, newTranslateCmd(), src, "--fields")
	if err != nil {
		t.Fatalf("translate error = %v", err)
	}
	want := "Point\n  static:   made\n  instance: x\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunCmd(t *testing.T) {
	path := writeFile(t, "Main.java", hello)
	out, err := execute(t, newRunCmd(config.Default()), "", path)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if out != "Hello\n" {
		t.Errorf("output = %q, want %q", out, "Hello\n")
	}
}

func TestRunCmdFailure(t *testing.T) {
	_, err := execute(t, newRunCmd(config.Default()), `System.out.println(missing);`)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "Error: ") {
		t.Errorf("error = %q, want prefix %q", err, "Error: ")
	}
}

func TestCheckCmd(t *testing.T) {
	path := writeFile(t, "Main.java", hello)

	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		wantLine string
	}{
		{"pass", []string{path, "--expected", "Hello"}, false, "PASS"},
		{"fail", []string{path, "--expected", "Bye"}, true, "FAIL"},
		{"expected file", []string{path, "--expected-file", writeFile(t, "want.txt", "Hello\n")}, false, "PASS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, newCheckCmd(config.Default()), "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("check error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(out, tt.wantLine) {
				t.Errorf("output = %q, want it to start with %q", out, tt.wantLine)
			}
		})
	}
}

func TestCheckCmdRequiresExpected(t *testing.T) {
	path := writeFile(t, "Main.java", hello)
	if _, err := execute(t, newCheckCmd(config.Default()), "", path); err == nil {
		t.Error("expected an error without --expected or --expected-file")
	}
}
