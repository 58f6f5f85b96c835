package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	clierrors "github.com/tarantool/rpmatch/internal/rpmatch/cli/errors"
)

// RequiresMinArgs returns an error if there is not at least min args.
func RequiresMinArgs(minArgs int, message string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= minArgs {
			return nil
		}

		if message != "" {
			return clierrors.NewUsageError(errors.New(message))
		}

		return clierrors.NewUsageError(errors.Errorf(
			"%q requires at least %d %s, received %d",
			cmd.Name(),
			minArgs,
			pluralize("argument", minArgs),
			len(args),
		))
	}
}

// FlagErrorFunc processes errors of CLI flags.
func FlagErrorFunc(_ *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	return clierrors.NewUsageError(err)
}

// PrintUsage writes usage of command to its error stream.
func PrintUsage(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	cmd.SetOut(cmd.ErrOrStderr())
	_ = cmd.Usage()
	cmd.SetOut(out)
}

// pluralize returns a plural word.
func pluralize(word string, number int) string {
	if number == 1 {
		return word
	}

	return word + "s"
}
