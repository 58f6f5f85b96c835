package general

import (
	"regexp"

	"github.com/pkg/errors"

	"github.com/tarantool/rpmatch/internal/rpmatch/models"
	"github.com/tarantool/rpmatch/internal/rpmatch/usecase"
)

// Verify interface compliance in compile time.
var _ usecase.Classifier = (*Classifier)(nil)

// Classifier type is implementation of response classifier over POSIX extended regular expressions.
type Classifier struct {
	patterns models.Patterns
	yes      *regexp.Regexp
	no       *regexp.Regexp
}

// NewClassifier compiles expressions of patterns.
func NewClassifier(patterns models.Patterns) (*Classifier, error) {
	yes, err := regexp.CompilePOSIX(patterns.YesExpr)
	if err != nil {
		return nil, errors.Errorf("failed to compile yesexpr of locale %q: %v", patterns.Locale, err)
	}

	no, err := regexp.CompilePOSIX(patterns.NoExpr)
	if err != nil {
		return nil, errors.Errorf("failed to compile noexpr of locale %q: %v", patterns.Locale, err)
	}

	return &Classifier{
		patterns: patterns,
		yes:      yes,
		no:       no,
	}, nil
}

// Classify checks affirmative expression first, so a response matching both is affirmative.
func (c *Classifier) Classify(response string) models.Verdict {
	switch {
	case c.yes.MatchString(response):
		return models.Affirmative
	case c.no.MatchString(response):
		return models.Negative
	default:
		return models.Unrecognized
	}
}

func (c *Classifier) Patterns() models.Patterns {
	return c.patterns
}
