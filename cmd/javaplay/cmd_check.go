package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/javaplay/javaplay/config"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var expected string
	var expectedFile string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Run a snippet and compare its output with the expected answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expectedFile != "" {
				data, err := os.ReadFile(expectedFile)
				if err != nil {
					return fmt.Errorf("read expected output: %w", err)
				}
				expected = string(data)
			}

			source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			v := svc.Check(cmd.Context(), source, expected)
			w := cmd.OutOrStdout()
			if v.Passed {
				fmt.Fprintln(w, "PASS")
				return nil
			}

			fmt.Fprintln(w, "FAIL")
			fmt.Fprintf(w, "expected:\n%s\ngot:\n%s\n", v.Expected, v.Output)
			return errors.New("output does not match")
		},
	}

	cmd.Flags().StringVarP(&expected, "expected", "e", "", "expected output (\\n escapes allowed)")
	cmd.Flags().StringVar(&expectedFile, "expected-file", "", "read the expected output from a file")
	cmd.MarkFlagsMutuallyExclusive("expected", "expected-file")
	cmd.MarkFlagsOneRequired("expected", "expected-file")

	return cmd
}
