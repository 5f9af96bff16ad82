package main

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the content of mkinfo.yaml. Command-line flags override it.
type Config struct {
	Makefile string    `yaml:"makefile"`
	Format   string    `yaml:"format"`
	Strict   bool      `yaml:"strict"`
	Log      LogConfig `yaml:"log"`
}

// defaultConfig returns the values used when neither a config file nor
// a flag sets them.
func defaultConfig() Config {
	return Config{
		Makefile: defaultMakefile,
		Format:   formatJSON,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
