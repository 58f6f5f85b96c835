package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/tarantool/rpmatch/internal/rpmatch/cli"
	clierrors "github.com/tarantool/rpmatch/internal/rpmatch/cli/errors"
	"github.com/tarantool/rpmatch/internal/rpmatch/cli/options"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

type App struct {
	cliOpts *options.CliOptions
	cli     *cli.Cli
}

func NewApp(version string) *App {
	return newApp(options.NewCliOptions(version))
}

func newApp(cliOpts *options.CliOptions) *App {
	return &App{
		cliOpts: cliOpts,
		cli:     cli.NewCli(cliOpts),
	}
}

// Run executes rpmatch and returns process exit status.
func (a *App) Run() int {
	var usageErr *clierrors.UsageError

	err := a.cli.Run(context.Background())

	switch {
	case err == nil:
		return a.cliOpts.ExitCode()
	case errors.As(err, &usageErr):
		return models.ExitCodeUsageError
	default:
		slog.Error("rpmatch finished due error", slog.String("error", err.Error()))

		if a.cliOpts.DebugMode() {
			a.logStackTrace(err)
		}

		return models.ExitCodeUsageError
	}
}

func (a *App) logStackTrace(err error) {
	if e, ok := errors.Cause(err).(stackTracer); ok {
		for _, frame := range e.StackTrace() {
			frameTrace := strings.Split(fmt.Sprintf("%+v", frame), "\n")
			slog.Error(frameTrace[0])
			slog.Error(frameTrace[1])
		}
	}
}
