package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/javaplay/javaplay/transpile"
	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	var trace bool
	var fields bool

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Print the JavaScript translation of a snippet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if fields {
				printFields(out, transpile.FieldsOf(source))
				return nil
			}

			var opts transpile.Options
			if trace {
				opts.Trace = func(stage, code string) {
					fmt.Fprintf(out, "=== %s ===\n%s\n", stage, strings.TrimRight(code, "\n"))
				}
			}

			res := transpile.TranslateWith(source, opts)
			if res.Err != nil {
				return fmt.Errorf("translate: %w", res.Err)
			}
			if !trace {
				fmt.Fprint(out, res.Code)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "print the code after every translation stage")
	cmd.Flags().BoolVar(&fields, "fields", false, "list the fields declared by each class instead of translating")

	return cmd
}

func printFields(w io.Writer, reg *transpile.Registry) {
	for _, class := range reg.Classes() {
		f, _ := reg.Fields(class)
		fmt.Fprintf(w, "%s\n", class)
		if len(f.Static) > 0 {
			fmt.Fprintf(w, "  static:   %s\n", strings.Join(f.Static, ", "))
		}
		if len(f.Instance) > 0 {
			fmt.Fprintf(w, "  instance: %s\n", strings.Join(f.Instance, ", "))
		}
	}
}
