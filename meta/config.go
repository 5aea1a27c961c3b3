// Package meta implements the engine orchestrator that selects a search
// strategy for a compiled pattern.
//
// The meta-engine coordinates two components:
//   - Prefilter: fast literal-based candidate finding (optional)
//   - NFA (PikeVM): the automaton that decides each candidate
//
// Strategy selection is based on the prefix literals extracted from the
// pattern: patterns that must start with a small set of literals search for
// those first, everything else restarts the automaton at every offset.
//
// The meta-engine backs the public rex API, hiding strategy selection and
// per-search state pooling from users.
package meta

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Force NFA-only execution
//	engine, err := meta.CompileWithConfig("foo|bar", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering.
	// When false, no prefilter is used even if literals are available.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits the number of prefix literals extracted for
	// prefiltering. Patterns needing more fall back to the NFA.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen limits the length in bytes of each prefix literal.
	// Default: 64
	MaxLiteralLen int

	// MaxClassSize limits the size of sets and classes expanded into
	// literals. \d has 10 members, \l has 26.
	// Default: 10
	MaxClassSize int
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxClassSize = 26 // Expand \l and \u as well
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MaxLiterals:     64,
		MaxLiteralLen:   64,
		MaxClassSize:    10,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges (checked only when EnablePrefilter is set):
//   - MaxLiterals: 1 to 1,000
//   - MaxLiteralLen: 1 to 256
//   - MaxClassSize: 0 to 128
//
// Example:
//
//	config := meta.Config{EnablePrefilter: true} // Invalid!
//	if err := config.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func (c Config) Validate() error {
	if !c.EnablePrefilter {
		return nil
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 1,000",
		}
	}
	if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 256 {
		return &ConfigError{
			Field:   "MaxLiteralLen",
			Message: "must be between 1 and 256",
		}
	}
	if c.MaxClassSize < 0 || c.MaxClassSize > 128 {
		return &ConfigError{
			Field:   "MaxClassSize",
			Message: "must be between 0 and 128",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}
