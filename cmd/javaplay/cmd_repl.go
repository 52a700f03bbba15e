package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/javaplay/javaplay/config"
	"github.com/javaplay/javaplay/playground"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	historyFile = ".javaplay_history"
	promptMain  = "java> "
	promptCont  = "  ... "
)

const replHelp = `Type Java statements or whole classes. An empty line runs the snippet.
  :js     toggle printing the JavaScript translation
  :quit   exit`

func newReplCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively translate and run snippets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return runPiped(cmd, svc)
			}
			return runRepl(cmd, svc)
		},
	}
}

// runPiped treats non-interactive stdin as a single snippet.
func runPiped(cmd *cobra.Command, svc *playground.Service) error {
	source, err := readSource(cmd.InOrStdin(), nil)
	if err != nil {
		return err
	}
	printOutcome(cmd.OutOrStdout(), svc.Execute(cmd.Context(), source))
	return nil
}

func runRepl(cmd *cobra.Command, svc *playground.Service) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, replHelp)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	showJS := false
	for {
		snippet, ok := readSnippet(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		switch strings.TrimSpace(snippet) {
		case "":
			continue
		case ":quit":
			return nil
		case ":js":
			showJS = !showJS
			fmt.Fprintf(out, "translation display %s\n", onOff(showJS))
			continue
		}

		if showJS {
			if res := svc.Translate(snippet); res.OK() {
				fmt.Fprintln(out, strings.TrimSpace(res.Code))
			}
		}
		printOutcome(out, svc.Execute(cmd.Context(), snippet))
		ln.AppendHistory(strings.ReplaceAll(snippet, "\n", " "))
	}
}

// readSnippet collects lines until an empty one. A line starting with ':'
// on an empty buffer is returned at once as a command. ok is false on EOF
// or Ctrl-C.
func readSnippet(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
}

func printOutcome(w io.Writer, out playground.Outcome) {
	if out.Output != "" {
		fmt.Fprintln(w, out.Output)
	}
	if out.Failed() {
		fmt.Fprintln(w, out.Error)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
