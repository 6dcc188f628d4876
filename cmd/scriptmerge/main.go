// Package main is the entry point for the scriptmerge CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/scriptmerge/cmd/scriptmerge/commands"
	"go.trai.ch/scriptmerge/internal/app"
	"go.trai.ch/scriptmerge/internal/core/domain"
	_ "go.trai.ch/scriptmerge/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// Failed components were already reported per file.
		if errors.Is(err, domain.ErrBuildFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
