package locale

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

// Resolver type is used to select expressions of locale from a chain of providers.
type Resolver struct {
	logger    *slog.Logger
	providers []Provider
}

func NewResolver(logger *slog.Logger, providers ...Provider) *Resolver {
	return &Resolver{
		logger:    logger,
		providers: providers,
	}
}

// Resolve returns expressions from the first provider that knows the locale,
// falling back to POSIX expressions.
func (r *Resolver) Resolve(name Name) models.Patterns {
	if name.IsPOSIX() {
		return POSIXPatterns
	}

	for _, p := range r.providers {
		patterns, err := p.Patterns(name)
		if err != nil {
			if !errors.Is(err, ErrLocaleNotFound) {
				r.logger.Warn(
					"failed to load locale expressions",
					slog.String("provider", p.Name()),
					slog.String("locale", name.String()),
					slog.String("error", err.Error()),
				)
			}

			continue
		}

		if errs := patterns.Validate(); len(errs) != 0 {
			r.logger.Warn(
				"skipping invalid locale expressions",
				slog.String("provider", p.Name()),
				slog.String("locale", name.String()),
				slog.String("error", errs[0].Error()),
			)

			continue
		}

		r.logger.Debug(
			"locale expressions resolved",
			slog.String("provider", p.Name()),
			slog.String("locale", patterns.Locale),
			slog.String("yesexpr", patterns.YesExpr),
			slog.String("noexpr", patterns.NoExpr),
		)

		return patterns
	}

	r.logger.Debug("no expressions for locale, using POSIX defaults", slog.String("locale", name.String()))

	return POSIXPatterns
}
