package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Reducer *ReducerConfig `yaml:"reducer"`
	Logger  *LoggerConfig  `yaml:"logger"`
}

func New() *AppConfig {
	return &AppConfig{
		Reducer: NewReducerConfig(),
		Logger:  NewLoggerConfig(),
	}
}

// Load reads a YAML file on top of the defaults returned by New.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config '%s'", path)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config '%s'", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config '%s'", path)
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	if c.Reducer == nil {
		c.Reducer = NewReducerConfig()
	}
	if c.Logger == nil {
		c.Logger = NewLoggerConfig()
	}

	if err := c.Reducer.Validate(); err != nil {
		return errors.Wrap(err, "reducer")
	}
	if err := c.Logger.Validate(); err != nil {
		return errors.Wrap(err, "logger")
	}
	return nil
}

func validLevel(level string) error {
	if _, err := logrus.ParseLevel(level); err != nil {
		return errors.Wrapf(ErrInvalidLevel, "'%s'", level)
	}
	return nil
}

var ErrInvalidLevel = errors.New("invalid log level")
