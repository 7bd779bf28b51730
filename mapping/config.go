package mapping

import (
	"github.com/shrek82/rowmap/codec"
	"github.com/shrek82/rowmap/logger"
)

// Config controls schema resolution.
type Config struct {
	// Strategy selects field vs. getter/setter access. Zero value is AccessBoth.
	Strategy AccessStrategy
	// Codecs resolves custom codec identifiers. Nil means codec.Default().
	Codecs *codec.Registry
	// Logger receives schema-resolution events. Nil means a Warn-level
	// standard logger.
	Logger logger.Logger
}

// DefaultConfig returns the default mapping configuration.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.Codecs == nil {
		c.Codecs = codec.Default()
	}
	if c.Logger == nil {
		l := logger.NewStdLogger()
		l.SetLevel(logger.LogLevelWarn)
		c.Logger = l
	}
	return c
}
