package rpmatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarantool/rpmatch/internal/rpmatch/cli/options"
	"github.com/tarantool/rpmatch/internal/rpmatch/cli/streams"
	"github.com/tarantool/rpmatch/internal/rpmatch/locale"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
	"github.com/tarantool/rpmatch/internal/rpmatch/usecase/general"
)

func newTestOptions(t *testing.T, args []string, out *bytes.Buffer) *options.CliOptions {
	t.Helper()

	cliOpts := options.NewCliOptions("1.0.0")
	cliOpts.SetArgs(args)
	cliOpts.SetOut(streams.NewOut(out))
	cliOpts.SetErr(streams.NewOut(out))

	return cliOpts
}

func TestNewRPMatchCommandVersion(t *testing.T) {
	out := new(bytes.Buffer)

	cmd := NewRPMatchCommand(newTestOptions(t, []string{"--version"}, out))

	require.NoError(t, cmd.Execute())
	require.Equal(t, "rpmatch 1.0.0\n", out.String())
}

func TestNewRPMatchCommandClassify(t *testing.T) {
	type testCase struct {
		name     string
		response string
		expected models.Verdict
	}

	testCases := []testCase{
		{
			name:     "Affirmative",
			response: "Y",
			expected: models.Affirmative,
		},
		{
			name:     "Negative",
			response: "N",
			expected: models.Negative,
		},
		{
			name:     "Unrecognized",
			response: "?",
			expected: models.Unrecognized,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		out := new(bytes.Buffer)

		classifier, err := general.NewClassifier(locale.POSIXPatterns)
		require.NoError(t, err)

		cliOpts := newTestOptions(t, []string{tc.response}, out)
		cliOpts.SetClassifier(classifier)
		cliOpts.SetExitCode(-1)

		cmd := NewRPMatchCommand(cliOpts)

		require.NoError(t, cmd.Execute())
		require.Equal(t, tc.expected.ExitCode(), cliOpts.ExitCode())
		require.Empty(t, out.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestNewRPMatchCommandWithoutClassifier(t *testing.T) {
	out := new(bytes.Buffer)

	cmd := NewRPMatchCommand(newTestOptions(t, []string{"yes"}, out))

	require.ErrorContains(t, cmd.Execute(), "classifier is not initialized")
}
