package builtin

import (
	_ "embed"
	"log"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/rpmatch/internal/rpmatch/locale"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

// Verify interface compliance in compile time.
var _ locale.Provider = (*Provider)(nil)

//go:embed locales.yml
var localesFile []byte

var defaultTable map[string]models.Patterns

// Provider type is implementation of locale provider over embedded expressions table.
type Provider struct {
	table   map[string]models.Patterns
	keys    []string
	matcher language.Matcher
}

// NewProvider creates Provider over the embedded table.
func NewProvider() *Provider {
	return newProvider(defaultTable)
}

func newProvider(table map[string]models.Patterns) *Provider {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	tags := make([]language.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, language.MustParse(k))
	}

	return &Provider{
		table:   table,
		keys:    keys,
		matcher: language.NewMatcher(tags),
	}
}

func (p *Provider) Name() string {
	return "builtin"
}

// Patterns returns expressions of the closest language of the table.
func (p *Provider) Patterns(name locale.Name) (models.Patterns, error) {
	tag, err := name.Tag()
	if err != nil {
		return models.Patterns{}, errors.WithMessage(locale.ErrLocaleNotFound, err.Error())
	}

	if _, confidence := tag.Base(); confidence != language.Exact {
		return models.Patterns{}, errors.WithMessagef(locale.ErrLocaleNotFound, "unknown language of %q", name.String())
	}

	_, index, confidence := p.matcher.Match(tag)
	if confidence < language.High {
		return models.Patterns{}, errors.WithMessagef(locale.ErrLocaleNotFound, "no builtin expressions for %q", name.String())
	}

	key := p.keys[index]

	patterns := p.table[key]
	patterns.Locale = key

	return patterns, nil
}

func init() {
	err := yaml.Unmarshal(localesFile, &defaultTable)
	if err != nil {
		log.Fatalf("parse builtin locales: %s", err)
	}
}
