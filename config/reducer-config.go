package config

type ReducerConfig struct {
	// LogUnsupported emits a diagnostic entry for every pair of values
	// that has no comparison rule. The returned maximum is not affected.
	LogUnsupported   bool   `yaml:"log_unsupported"`
	UnsupportedLevel string `yaml:"unsupported_level"`
}

func NewReducerConfig() *ReducerConfig {
	return &ReducerConfig{
		LogUnsupported:   false,
		UnsupportedLevel: "debug",
	}
}

func (c *ReducerConfig) Validate() error {
	return validLevel(c.UnsupportedLevel)
}
