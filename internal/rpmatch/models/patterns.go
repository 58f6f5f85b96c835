package models

import (
	"regexp"

	"github.com/pkg/errors"
)

// Patterns type is used to describe affirmative and negative expressions of a locale.
type Patterns struct {
	Locale  string `yaml:"-"`
	YesExpr string `yaml:"yesexpr"`
	NoExpr  string `yaml:"noexpr"`
}

func (p Patterns) Validate() []error {
	var errs []error

	if err := validateExpr("yesexpr", p.YesExpr); err != nil {
		errs = append(errs, err)
	}

	if err := validateExpr("noexpr", p.NoExpr); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func validateExpr(name, expr string) error {
	if expr == "" {
		return errors.Errorf("%s should not be empty", name)
	}

	if _, err := regexp.CompilePOSIX(expr); err != nil {
		return errors.Errorf("invalid %s %q: %v", name, expr, err)
	}

	return nil
}
