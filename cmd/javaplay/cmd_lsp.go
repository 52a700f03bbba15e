package main

import (
	"github.com/javaplay/javaplay/config"
	"github.com/javaplay/javaplay/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			return lsp.NewServer(svc, version).RunStdio()
		},
	}
}
