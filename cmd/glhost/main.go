// Package main is the entry point for the glhost wrapper.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.nixgl.dev/glhost/cmd/glhost/commands"
	"go.nixgl.dev/glhost/internal/app"
	"go.nixgl.dev/glhost/internal/core/domain"
	_ "go.nixgl.dev/glhost/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution, forwarding the wrapped binary's exit code
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrNoBinarySpecified) {
			return 2
		}
		components.Logger.Error(err)
		return 1
	}
	return cli.ExitCode()
}
