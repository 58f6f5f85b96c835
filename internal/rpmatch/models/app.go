package models

import (
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultLocalesPath = "/usr/share/i18n/locales"
)

// AppConfig type is used to describe application config. It is read from environment only.
type AppConfig struct {
	LogFormat   string `env:"RPMATCH_LOG_FORMAT"`
	LocalesPath string `env:"RPMATCH_LOCALES_PATH"`
}

func (m *AppConfig) ParseFromEnv() error {
	err := cleanenv.ReadEnv(m)
	if err != nil {
		return errors.WithMessage(err, "failed to read app config from environment")
	}

	return m.PostProcess()
}

func (m *AppConfig) PostProcess() error {
	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = LogFormatAuto
	}

	if m.LocalesPath == "" {
		m.LocalesPath = DefaultLocalesPath
	}
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains([]string{LogFormatAuto, LogFormatText, LogFormatJSON}, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	return errs
}

func parseErrsToString(errs []error) string {
	var sb strings.Builder

	for i, err := range errs {
		v := err.Error()

		if !strings.HasSuffix(v, ":") {
			sb.WriteString("- ")
		}

		sb.WriteString(v)

		if i != len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
