package system

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/rpmatch/internal/rpmatch/locale"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

const localesDir = "/usr/share/i18n/locales"

func newFileSystemMock(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()

	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(localesDir, name), []byte(content), 0o644))
	}

	return fs
}

func TestProviderPatterns(t *testing.T) {
	files := map[string]string{
		"en_US": `LC_MESSAGES
yesexpr "<U005E><U005B><U002B><U0031><U0079><U0059><U005D>"
noexpr  "<U005E><U005B><U002D><U0030><U006E><U004E><U005D>"
END LC_MESSAGES
`,
		"en_GB": `LC_MESSAGES
copy "en_US"
END LC_MESSAGES
`,
		"fr_FR": `LC_MESSAGES
yesexpr "^[+1oOyY]"
noexpr  "^[-0nN]"
END LC_MESSAGES
`,
		"sr_RS@latin": `LC_MESSAGES
yesexpr "^[+1dDyY]"
noexpr  "^[-0nN]"
END LC_MESSAGES
`,
		"loop_A": `LC_MESSAGES
copy "loop_A"
END LC_MESSAGES
`,
		"broken_XX": `LC_MESSAGES
yesexpr ^[yY]
END LC_MESSAGES
`,
		"dangling_XX": `LC_MESSAGES
copy "missing_XX"
END LC_MESSAGES
`,
		"ctype_XX": `LC_CTYPE
END LC_CTYPE
`,
	}

	type testCase struct {
		name     string
		locale   string
		expected models.Patterns
		notFound bool
		wantErr  string
	}

	testCases := []testCase{
		{
			name:     "Direct",
			locale:   "en_US.UTF-8",
			expected: models.Patterns{Locale: "en_US", YesExpr: "^[+1yY]", NoExpr: "^[-0nN]"},
		},
		{
			name:     "Copied",
			locale:   "en_GB.UTF-8",
			expected: models.Patterns{Locale: "en_GB", YesExpr: "^[+1yY]", NoExpr: "^[-0nN]"},
		},
		{
			name:     "Modifier",
			locale:   "sr_RS.UTF-8@latin",
			expected: models.Patterns{Locale: "sr_RS@latin", YesExpr: "^[+1dDyY]", NoExpr: "^[-0nN]"},
		},
		{
			name:     "Unknown territory",
			locale:   "fr_BE",
			notFound: true,
		},
		{
			name:     "No messages category",
			locale:   "ctype_XX",
			notFound: true,
		},
		{
			name:     "Path traversal",
			locale:   "../../../etc/passwd",
			notFound: true,
		},
		{
			name:    "Copy loop",
			locale:  "loop_A",
			wantErr: "too many nested copy directives",
		},
		{
			name:    "Broken definition",
			locale:  "broken_XX",
			wantErr: "expected quoted string",
		},
		{
			name:     "Copy of missing locale",
			locale:   "dangling_XX",
			notFound: true,
		},
	}

	p := NewProvider(newFileSystemMock(t, files), localesDir)

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := p.Patterns(locale.ParseName(tc.locale))

		switch {
		case tc.notFound:
			require.True(t, errors.Is(err, locale.ErrLocaleNotFound), "got: %v", err)
		case tc.wantErr != "":
			require.ErrorContains(t, err, tc.wantErr)
			require.False(t, errors.Is(err, locale.ErrLocaleNotFound))
		default:
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
