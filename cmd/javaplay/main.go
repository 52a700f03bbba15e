package main

import (
	"fmt"
	"io"
	"os"

	"github.com/javaplay/javaplay/config"
	"github.com/javaplay/javaplay/playground"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var verbose int

	rootCmd := &cobra.Command{
		Use:           "javaplay",
		Short:         "Translate and run Java-like snippets as JavaScript",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(min(cfg.LogLevel+verbose, 6), nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newTranslateCmd())
	rootCmd.AddCommand(newRunCmd(cfg))
	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newReplCmd(cfg))
	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newLSPCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService(cfg *config.Config, opts ...playground.Option) (*playground.Service, error) {
	base := []playground.Option{
		playground.WithTimeout(cfg.RunTimeout),
		playground.WithCacheSize(cfg.CacheSize),
	}
	svc, err := playground.NewService(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create playground: %w", err)
	}
	return svc, nil
}

// readSource reads the file named by args[0], or stdin when no file is given
// or the name is "-".
func readSource(in io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}
