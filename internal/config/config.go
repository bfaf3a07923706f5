// Package config loads the flexlayout configuration file.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	flexerrors "github.com/grindlemire/go-flex/internal/errors"
)

// Config holds defaults for the CLI. Command-line flags override these values.
type Config struct {
	Width       float64       `yaml:"width" validate:"gte=0"`
	Height      float64       `yaml:"height" validate:"gte=0"`
	Format      string        `yaml:"format" validate:"oneof=json yaml table"`
	LogLevel    string        `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	HumanLogs   bool          `yaml:"human_logs"`
	Concurrency int           `yaml:"concurrency" validate:"gte=0,lte=64"`
	Preview     PreviewConfig `yaml:"preview"`
}

// PreviewConfig controls how frames are drawn in the terminal.
type PreviewConfig struct {
	// Columns is the grid width in cells. 0 means the terminal width.
	Columns int `yaml:"columns" validate:"gte=0"`
	// Border is the lipgloss border drawn around the preview.
	Border string `yaml:"border" validate:"oneof=normal rounded double thick hidden"`
	// ShowIDs prints node ids in the top-left corner of their boxes.
	ShowIDs bool `yaml:"show_ids"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Width:       80,
		Height:      24,
		Format:      "json",
		LogLevel:    "warn",
		HumanLogs:   true,
		Concurrency: 4,
		Preview: PreviewConfig{
			Border:  "rounded",
			ShowIDs: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, flexerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults and validates the result.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, flexerrors.NewParseError(path, 0, err)
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(yamlTagName)
		validateInst = v
	})
	return validateInst
}

// Validate checks field ranges and enumerations.
func Validate(cfg *Config) error {
	if cfg == nil {
		return flexerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			ve := ves[0]
			field := strings.TrimPrefix(ve.Namespace(), "Config.")
			msg := fmt.Sprintf("%v failed validation for tag '%s'", ve.Value(), ve.Tag())
			return flexerrors.NewValidationError(field, msg, err)
		}
		return flexerrors.NewValidationError("config", err.Error(), err)
	}
	return nil
}
