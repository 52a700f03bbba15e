package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/javaplay/javaplay/config"
	"github.com/javaplay/javaplay/playground"
	"github.com/spf13/cobra"
)

func newRunCmd(cfg *config.Config) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Translate and run a snippet, printing its output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			svc, err := newService(cfg, playground.WithTimeout(timeout))
			if err != nil {
				return err
			}

			out := svc.Execute(cmd.Context(), source)
			if out.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out.Output)
			}
			if out.Failed() {
				return errors.New(out.Error)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", cfg.RunTimeout, "stop the program after this long (0 for no limit)")

	return cmd
}
