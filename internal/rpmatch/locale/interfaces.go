package locale

import (
	"github.com/pkg/errors"

	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

var ErrLocaleNotFound = errors.New("locale not found")

// Provider interface implementation should resolve affirmative and negative expressions of locale.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Provider --output=mock --outpkg=mock
type Provider interface {
	// Name should return name of the source for logging.
	Name() string
	// Patterns should return expressions of locale or ErrLocaleNotFound.
	Patterns(name Name) (models.Patterns, error)
}
