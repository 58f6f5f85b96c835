package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tarantool/rpmatch/internal/rpmatch/cli/commands"
	"github.com/tarantool/rpmatch/internal/rpmatch/cli/commands/rpmatch"
	clierrors "github.com/tarantool/rpmatch/internal/rpmatch/cli/errors"
	"github.com/tarantool/rpmatch/internal/rpmatch/cli/options"
	"github.com/tarantool/rpmatch/internal/rpmatch/locale"
	"github.com/tarantool/rpmatch/internal/rpmatch/locale/builtin"
	"github.com/tarantool/rpmatch/internal/rpmatch/locale/system"
	"github.com/tarantool/rpmatch/internal/rpmatch/logger/handlers"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
	"github.com/tarantool/rpmatch/internal/rpmatch/usecase/general"
)

// Cli type is used to describe rpmatch CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
	fs   afero.Fs
}

func NewCli(opts *options.CliOptions) *Cli {
	cli := &Cli{
		opts: opts,
		cmd:  rpmatch.NewRPMatchCommand(opts),
		fs:   afero.NewOsFs(),
	}

	cli.cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if opts.RPMatchOpts().ShowVersion {
			return nil
		}

		return cli.initialize()
	}

	return cli
}

// Run executes command line. Usage errors are reported to the error stream together with usage.
func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintf(cli.cmd.ErrOrStderr(), "%s\n\n", err.Error())

		commands.PrintUsage(cli.cmd)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// initialize configures logging and builds classifier for the selected locale.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	rpmatchOpts := cliOpts.RPMatchOpts()

	err := appConfig.ParseFromEnv()
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	// setup logger
	logLevel := slog.LevelInfo
	if rpmatchOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var logHandler slog.Handler

	switch appConfig.LogFormat {
	case models.LogFormatJSON:
		logHandler = slog.NewJSONHandler(cliOpts.Err(), handlerOpts)
	case models.LogFormatText:
		logHandler = handlers.NewTextHandler(cliOpts.Err(), handlerOpts)
	default:
		if cliOpts.Err().IsTerminal() {
			logHandler = handlers.NewTextHandler(cliOpts.Err(), handlerOpts)
		} else {
			logHandler = slog.NewJSONHandler(cliOpts.Err(), handlerOpts)
		}
	}

	slog.SetDefault(slog.New(logHandler))

	// select locale
	name, err := cli.messagesLocale()
	if err != nil {
		return err
	}

	resolver := locale.NewResolver(
		slog.Default(),
		system.NewProvider(cli.fs, appConfig.LocalesPath),
		builtin.NewProvider(),
	)

	patterns := resolver.Resolve(name)

	classifier, err := general.NewClassifier(patterns)
	if err != nil {
		return errors.WithMessagef(err, "failed to build classifier for locale %q", name.String())
	}

	cliOpts.SetClassifier(classifier)

	return nil
}

func (cli *Cli) messagesLocale() (locale.Name, error) {
	if value := cli.opts.RPMatchOpts().Locale; value != "" {
		return locale.ParseName(value), nil
	}

	env, err := locale.ReadEnvironment()
	if err != nil {
		return locale.Name{}, err
	}

	return env.MessagesLocale(), nil
}
