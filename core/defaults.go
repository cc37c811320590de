package core

// DefaultConfig returns a Config with sensible defaults, the baseline
// before YAML/environment overlays are applied.
func DefaultConfig() Config {
	return Config{
		LogLevel:  LogLevelInfo,
		OutputDir: "build",
		Watch:     false,
	}
}
