package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/iudanet/minahasa-guide/internal/client/cli"
	"github.com/iudanet/minahasa-guide/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	app := cli.New(iocli.NewStdio())
	root := app.Command()

	err := fang.Execute(context.Background(), root,
		fang.WithVersion(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)

	if closeErr := app.Close(); closeErr != nil {
		slog.Error("failed to close database", "error", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
