package server

// Config holds configuration for the catalog HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// CacheSeconds is the Cache-Control max-age for catalog responses.
	// Zero disables the header.
	CacheSeconds int `mapstructure:"cache_seconds" default:"300"`
}
