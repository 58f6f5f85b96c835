package rpmatch

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tarantool/rpmatch/internal/rpmatch/cli/commands"
	"github.com/tarantool/rpmatch/internal/rpmatch/cli/options"
)

// NewRPMatchCommand creates 'rpmatch' command for CLI.
func NewRPMatchCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := cliOpts.RPMatchOpts()

	cmd := &cobra.Command{
		Use:   "rpmatch",
		Short: "Determine if the answer to a question is affirmative or negative",
		Long: "Determine if the answer to a question is affirmative or negative.\n" +
			"Response is matched against yesexpr and noexpr of the LC_MESSAGES locale.",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				return nil
			}

			return commands.RequiresMinArgs(1, commands.MissingResponseMessage)(cmd, args)
		},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
			HiddenDefaultCmd:  true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				printVersion(cmd, cliOpts)

				return nil
			}

			classifier := cliOpts.Classifier()
			if classifier == nil {
				return errors.New("classifier is not initialized")
			}

			verdict := classifier.Classify(args[0])

			slog.Debug(
				"response classified",
				slog.String("response", args[0]),
				slog.String("locale", classifier.Patterns().Locale),
				slog.String("verdict", verdict.String()),
			)

			cliOpts.SetExitCode(verdict.ExitCode())

			return nil
		},
	}

	cmd.SetArgs(cliOpts.Args())
	cmd.SetOut(cliOpts.Out())
	cmd.SetErr(cliOpts.Err())

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		// flags before the failing one are already set, so act on them like getopt does
		switch {
		case cmd.Flags().Changed(commands.HelpFlag):
			return cmd.Help() //nolint:wrapcheck
		case opts.ShowVersion:
			printVersion(cmd, cliOpts)

			return nil
		}

		return commands.FlagErrorFunc(cmd, err)
	})

	setupFlags(cmd.Flags(), opts)

	cmd.PersistentFlags().BoolP(commands.HelpFlag, commands.HelpShortFlag, false, commands.HelpUsage)

	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetHelpTemplate(helpTemplate)

	return cmd
}

func printVersion(cmd *cobra.Command, cliOpts *options.CliOptions) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "rpmatch "+cliOpts.Version())
}

// setupFlags sets flags for 'rpmatch' command and bind them to RPMatchOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *options.RPMatchOptions) {
	flags.BoolVarP(
		&opts.ShowVersion,
		commands.VersionFlag,
		commands.VersionShortFlag,
		commands.VersionDefaultValue,
		commands.VersionUsage,
	)

	flags.BoolVarP(
		&opts.DebugMode,
		commands.DebugModeFlag,
		commands.DebugModeShortFlag,
		commands.DebugModeDefaultValue,
		commands.DebugModeUsage,
	)

	flags.StringVarP(
		&opts.Locale,
		commands.LocaleFlag,
		commands.LocaleShortFlag,
		commands.LocaleDefaultValue,
		commands.LocaleUsage,
	)
}

const usageTemplate = `Usage:
  {{.CommandPath}} [OPTIONS] RESPONSE
  {{.CommandPath}} OPTION

{{.Long}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

Exit status:
  - 0 for a recognized positive response ("yes")
  - 1 for a recognized negative response ("no")
  - 2 when the value of response is unrecognized
  - 3 on usage error
`

const helpTemplate = `{{.UsageString}}`
