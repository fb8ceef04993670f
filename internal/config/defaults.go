package config

// DefaultConfig returns a Config with sensible defaults. The admin
// password default is intentionally trivial: the editor gate is a
// convenience, not a security boundary.
func DefaultConfig() *Config {
	return &Config{
		Port:          8090,
		DataDir:       "data",
		AdminPassword: "letmein",
		LogLevel:      "info",
	}
}
