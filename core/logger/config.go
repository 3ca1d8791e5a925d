package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	// "debug" also switches to the development config.
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoder: "console" for interactive CLI runs,
	// anything else emits JSON for log shippers.
	Format string `mapstructure:"format" default:"console"`
}
