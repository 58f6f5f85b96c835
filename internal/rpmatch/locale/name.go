package locale

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Name type is used to describe POSIX locale name: language[_territory][.codeset][@modifier].
type Name struct {
	Language  string
	Territory string
	Codeset   string
	Modifier  string
}

// ParseName splits locale name into its parts. Empty value is treated as POSIX locale.
func ParseName(value string) Name {
	var n Name

	rest := strings.TrimSpace(value)

	if i := strings.IndexByte(rest, '@'); i >= 0 {
		n.Modifier = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '.'); i >= 0 {
		n.Codeset = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '_'); i >= 0 {
		n.Territory = rest[i+1:]
		rest = rest[:i]
	}

	n.Language = rest

	return n
}

func (n Name) String() string {
	var sb strings.Builder

	sb.WriteString(n.Language)

	if n.Territory != "" {
		sb.WriteString("_" + n.Territory)
	}

	if n.Codeset != "" {
		sb.WriteString("." + n.Codeset)
	}

	if n.Modifier != "" {
		sb.WriteString("@" + n.Modifier)
	}

	return sb.String()
}

// IsPOSIX returns true for C and POSIX locales, including C.UTF-8 variants.
func (n Name) IsPOSIX() bool {
	if n.Territory != "" {
		return false
	}

	return n.Language == "" || n.Language == POSIXLocale || n.Language == CLocale
}

// Tag returns BCP 47 language tag of the locale.
func (n Name) Tag() (language.Tag, error) {
	if n.IsPOSIX() {
		return language.Und, errors.Errorf("locale %q has no language", n.String())
	}

	value := n.Language
	if n.Territory != "" {
		value += "-" + n.Territory
	}

	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, errors.Errorf("failed to parse language of locale %q: %v", n.String(), err)
	}

	return tag, nil
}

// Candidates returns locale definition names to look up, most specific first.
func (n Name) Candidates() []string {
	if n.IsPOSIX() {
		return nil
	}

	var names []string

	if n.Territory != "" {
		base := n.Language + "_" + n.Territory

		if n.Modifier != "" {
			names = append(names, base+"@"+n.Modifier)
		}

		names = append(names, base)
	}

	if n.Modifier != "" {
		names = append(names, n.Language+"@"+n.Modifier)
	}

	names = append(names, n.Language)

	return names
}
