package assetshandler

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"maxsubarray/app/pkg/assert"
	customerrors "maxsubarray/app/pkg/custom-types/custom-errors"

	"gopkg.in/yaml.v3"
)

const (
	TypeInt64   = "int64"
	TypeFloat64 = "float64"
)

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Workers  int          `yaml:"workers"`
	Datasets []DatasetCfg `yaml:"datasets"`
}

type DatasetCfg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Exactly one of the three sources below is set.
	Values     yaml.Node    `yaml:"values"`
	Generate   *GenerateCfg `yaml:"generate"`
	ValuesFile string       `yaml:"values_file"`
}

type GenerateCfg struct {
	Length int    `yaml:"length"`
	Expr   string `yaml:"expr"`
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ParseConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := config.normalize(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *Config) normalize() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return customerrors.MakeConfigError("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}

	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.Workers < 0 {
		return customerrors.MakeConfigError("workers", "must be at least 1")
	}

	if len(c.Datasets) == 0 {
		return customerrors.MakeConfigError("datasets", "at least one dataset is required")
	}

	seen := make(map[string]struct{}, len(c.Datasets))
	for idx := range c.Datasets {
		ds := &c.Datasets[idx]
		field := fmt.Sprintf("datasets[%d]", idx)

		if ds.Name == "" {
			return customerrors.MakeConfigError(field+".name", "cannot be empty")
		}
		if _, ok := seen[ds.Name]; ok {
			return customerrors.MakeConfigError(field+".name", fmt.Sprintf("duplicate name %q", ds.Name))
		}
		seen[ds.Name] = struct{}{}

		switch ds.Type {
		case "":
			ds.Type = TypeInt64
		case TypeInt64, TypeFloat64:
		default:
			return customerrors.MakeConfigError(field+".type", fmt.Sprintf("unsupported type %q", ds.Type))
		}

		sources := 0
		if ds.HasValues() {
			sources++
		}
		if ds.Generate != nil {
			sources++
			if ds.Generate.Length <= 0 {
				return customerrors.MakeConfigError(field+".generate.length", "must be greater than 0")
			}
			if ds.Generate.Expr == "" {
				return customerrors.MakeConfigError(field+".generate.expr", "cannot be empty")
			}
		}
		if ds.ValuesFile != "" {
			sources++
		}
		if sources != 1 {
			return customerrors.MakeConfigError(field, "exactly one of values, generate or values_file must be set")
		}
	}

	return nil
}

// HasValues reports whether an inline values list was given, even an empty one.
func (d *DatasetCfg) HasValues() bool {
	return !d.Values.IsZero()
}

func GetConfigFromFile(path string) Config {
	assert.Assert(path != "", "config file path cannot be empty", assert.AssertData{"path": path})

	configBytes, err := os.ReadFile(path)
	assert.NoError(err, "error reading config file", assert.AssertData{"path": path})

	config, err := ParseConfig(configBytes)
	assert.NoError(err, "error parsing config file", assert.AssertData{"path": path})

	return config
}
