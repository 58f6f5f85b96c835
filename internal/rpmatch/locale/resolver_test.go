package locale_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/rpmatch/internal/rpmatch/locale"
	providerMock "github.com/tarantool/rpmatch/internal/rpmatch/locale/mock"
	"github.com/tarantool/rpmatch/internal/rpmatch/logger/handlers"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

var errMockTest = errors.New("mock test error")

func TestResolverResolve(t *testing.T) {
	french := models.Patterns{Locale: "fr", YesExpr: "^[+1oOyY]", NoExpr: "^[-0nN]"}

	type testCase struct {
		name     string
		locale   string
		first    func(p *providerMock.Provider)
		second   func(p *providerMock.Provider)
		expected models.Patterns
	}

	testCases := []testCase{
		{
			name:     "POSIX locale skips providers",
			locale:   "C.UTF-8",
			first:    func(_ *providerMock.Provider) {},
			second:   func(_ *providerMock.Provider) {},
			expected: locale.POSIXPatterns,
		},
		{
			name:   "First provider wins",
			locale: "fr_FR.UTF-8",
			first: func(p *providerMock.Provider) {
				p.On("Name").Return("first").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR.UTF-8")).Return(french, nil)
			},
			second:   func(_ *providerMock.Provider) {},
			expected: french,
		},
		{
			name:   "Not found falls through",
			locale: "fr_FR",
			first: func(p *providerMock.Provider) {
				p.On("Name").Return("first").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR")).Return(models.Patterns{}, locale.ErrLocaleNotFound)
			},
			second: func(p *providerMock.Provider) {
				p.On("Name").Return("second").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR")).Return(french, nil)
			},
			expected: french,
		},
		{
			name:   "Failure falls through",
			locale: "fr_FR",
			first: func(p *providerMock.Provider) {
				p.On("Name").Return("first").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR")).Return(models.Patterns{}, errMockTest)
			},
			second: func(p *providerMock.Provider) {
				p.On("Name").Return("second").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR")).Return(french, nil)
			},
			expected: french,
		},
		{
			name:   "Invalid expressions fall through",
			locale: "fr_FR",
			first: func(p *providerMock.Provider) {
				p.On("Name").Return("first").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR")).
					Return(models.Patterns{Locale: "fr_FR", YesExpr: "^[oO", NoExpr: "^[nN]"}, nil)
			},
			second: func(p *providerMock.Provider) {
				p.On("Name").Return("second").Maybe()
				p.On("Patterns", locale.ParseName("fr_FR")).Return(french, nil)
			},
			expected: french,
		},
		{
			name:   "Nobody knows locale",
			locale: "xx_YY",
			first: func(p *providerMock.Provider) {
				p.On("Name").Return("first").Maybe()
				p.On("Patterns", locale.ParseName("xx_YY")).Return(models.Patterns{}, locale.ErrLocaleNotFound)
			},
			second: func(p *providerMock.Provider) {
				p.On("Name").Return("second").Maybe()
				p.On("Patterns", locale.ParseName("xx_YY")).Return(models.Patterns{}, locale.ErrLocaleNotFound)
			},
			expected: locale.POSIXPatterns,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		first := providerMock.NewProvider(t)
		second := providerMock.NewProvider(t)

		tc.first(first)
		tc.second(second)

		resolver := locale.NewResolver(handlers.DummyLogger, first, second)

		require.Equal(t, tc.expected, resolver.Resolve(locale.ParseName(tc.locale)))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
