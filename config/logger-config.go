package config

type LoggerConfig struct {
	Level           string `yaml:"level"`
	TimestampFormat string `yaml:"timestamp_format"`
}

func NewLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:           "info",
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

func (c *LoggerConfig) Validate() error {
	return validLevel(c.Level)
}
