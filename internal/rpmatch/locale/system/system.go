package system

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/tarantool/rpmatch/internal/rpmatch/locale"
	"github.com/tarantool/rpmatch/internal/rpmatch/models"
)

// Verify interface compliance in compile time.
var _ locale.Provider = (*Provider)(nil)

// Provider type is implementation of locale provider over platform locale definition sources,
// as installed by glibc into /usr/share/i18n/locales.
type Provider struct {
	fs  afero.Fs
	dir string
}

// NewProvider function creates Provider object.
func NewProvider(fs afero.Fs, dir string) *Provider {
	return &Provider{
		fs:  fs,
		dir: dir,
	}
}

func (p *Provider) Name() string {
	return "system"
}

// Patterns returns expressions from the most specific definition file of locale.
func (p *Provider) Patterns(name locale.Name) (models.Patterns, error) {
	for _, candidate := range name.Candidates() {
		patterns, err := p.load(candidate, 0)
		if errors.Is(err, locale.ErrLocaleNotFound) {
			continue
		}

		if err != nil {
			return models.Patterns{}, err
		}

		patterns.Locale = candidate

		return patterns, nil
	}

	return models.Patterns{}, errors.WithMessagef(locale.ErrLocaleNotFound, "no definition of %q in %s", name.String(), p.dir)
}

func (p *Provider) load(fileName string, depth int) (models.Patterns, error) {
	if depth > locale.MaxCopyDepth {
		return models.Patterns{}, errors.Errorf("too many nested copy directives at %q", fileName)
	}

	if fileName == "" || strings.ContainsAny(fileName, `/\`) || fileName == ".." {
		return models.Patterns{}, errors.WithMessagef(locale.ErrLocaleNotFound, "invalid locale file name %q", fileName)
	}

	path := filepath.Join(p.dir, fileName)

	f, err := p.fs.Open(path)
	if os.IsNotExist(err) {
		return models.Patterns{}, errors.WithMessagef(locale.ErrLocaleNotFound, "file %q", path)
	}

	if err != nil {
		return models.Patterns{}, errors.Errorf("failed to open locale definition %q: %v", path, err)
	}
	defer f.Close()

	m, err := parseMessages(f)
	if err != nil {
		return models.Patterns{}, errors.WithMessagef(err, "failed to parse locale definition %q", path)
	}

	if !m.found {
		return models.Patterns{}, errors.WithMessagef(locale.ErrLocaleNotFound, "no %s category in %q", messagesCategory, path)
	}

	var patterns models.Patterns

	if m.copyFrom != "" {
		patterns, err = p.load(m.copyFrom, depth+1)
		if err != nil {
			return models.Patterns{}, errors.WithMessagef(err, "failed to copy %s from %q", messagesCategory, m.copyFrom)
		}
	}

	if m.yesExpr != "" {
		patterns.YesExpr = m.yesExpr
	}

	if m.noExpr != "" {
		patterns.NoExpr = m.noExpr
	}

	return patterns, nil
}
