package locale

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Environment type is used to describe locale environment variables of the process.
type Environment struct {
	All      string `env:"LC_ALL"`
	Messages string `env:"LC_MESSAGES"`
	Lang     string `env:"LANG"`
}

func ReadEnvironment() (Environment, error) {
	var env Environment

	if err := cleanenv.ReadEnv(&env); err != nil {
		return Environment{}, errors.WithMessage(err, "failed to read locale environment")
	}

	return env, nil
}

// MessagesLocale returns locale selected for LC_MESSAGES category.
func (e Environment) MessagesLocale() Name {
	for _, value := range []string{e.All, e.Messages, e.Lang} {
		if value != "" {
			return ParseName(value)
		}
	}

	return Name{Language: CLocale}
}
