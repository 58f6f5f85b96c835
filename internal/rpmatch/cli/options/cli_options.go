package options

import (
	"os"

	"github.com/tarantool/rpmatch/internal/rpmatch/cli/streams"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
	"github.com/tarantool/rpmatch/internal/rpmatch/usecase"
)

// RPMatchOptions type is used to describe root command options.
type RPMatchOptions struct {
	ShowVersion bool
	DebugMode   bool
	Locale      string
}

type CliOptions struct {
	classifier     usecase.Classifier
	out            *streams.Out
	err            *streams.Out
	args           []string
	appConfig      *models.AppConfig
	rpmatchOptions *RPMatchOptions
	version        string
	exitCode       int
}

func NewCliOptions(version string) *CliOptions {
	return &CliOptions{
		version:        version,
		out:            streams.NewOut(os.Stdout),
		err:            streams.NewOut(os.Stderr),
		args:           os.Args[1:],
		appConfig:      &models.AppConfig{},
		rpmatchOptions: &RPMatchOptions{},
	}
}

func (opts *CliOptions) Classifier() usecase.Classifier {
	return opts.classifier
}

func (opts *CliOptions) SetClassifier(classifier usecase.Classifier) {
	opts.classifier = classifier
}

func (opts *CliOptions) Out() *streams.Out {
	return opts.out
}

func (opts *CliOptions) SetOut(out *streams.Out) {
	opts.out = out
}

func (opts *CliOptions) Err() *streams.Out {
	return opts.err
}

func (opts *CliOptions) SetErr(err *streams.Out) {
	opts.err = err
}

func (opts *CliOptions) Args() []string {
	return opts.args
}

func (opts *CliOptions) SetArgs(args []string) {
	opts.args = args
}

func (opts *CliOptions) AppConfig() *models.AppConfig {
	return opts.appConfig
}

func (opts *CliOptions) SetAppConfig(appConfig *models.AppConfig) {
	opts.appConfig = appConfig
}

func (opts *CliOptions) RPMatchOpts() *RPMatchOptions {
	return opts.rpmatchOptions
}

func (opts *CliOptions) SetRPMatchOpts(rpmatchOpts *RPMatchOptions) {
	opts.rpmatchOptions = rpmatchOpts
}

func (opts *CliOptions) Version() string {
	return opts.version
}

func (opts *CliOptions) SetVersion(version string) {
	opts.version = version
}

func (opts *CliOptions) DebugMode() bool {
	return opts.RPMatchOpts().DebugMode
}

func (opts *CliOptions) SetDebugMode(debugMode bool) {
	opts.RPMatchOpts().DebugMode = debugMode
}

// ExitCode returns process exit status chosen by the executed command.
func (opts *CliOptions) ExitCode() int {
	return opts.exitCode
}

func (opts *CliOptions) SetExitCode(exitCode int) {
	opts.exitCode = exitCode
}
