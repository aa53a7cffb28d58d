package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/gardener/internal/cli"
	"github.com/alexanderramin/gardener/internal/config"
	"github.com/alexanderramin/gardener/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env and environment first; persistent flags override them.
	cfg, err := config.LoadWithEnvFile(".env")
	if err != nil {
		return err
	}

	app := &cli.App{
		Config:    cfg,
		Metrics:   metrics.New(),
		LogOutput: os.Stderr,
	}

	// The bubbletea transcript needs a terminal on both ends.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
