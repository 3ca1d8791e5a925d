package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"gamedata-sync/core/logger"
	"gamedata-sync/core/server"
	"gamedata-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the tool.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Source selects where the game data extract is read from.
	Source SourceConfig `mapstructure:"source"`
	// Data holds configuration for the generated catalog output.
	Data DataConfig `mapstructure:"data"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the catalog HTTP server.
	Server server.Config `mapstructure:"server"`
}

// Extract source modes.
const (
	// SourceModeDir reads the extract from a local directory.
	SourceModeDir = "dir"
	// SourceModeBucket reads the extract from object storage.
	SourceModeBucket = "bucket"
)

// SourceConfig selects the extract source.
type SourceConfig struct {
	// Mode is either "dir" or "bucket".
	Mode string `mapstructure:"mode" default:"dir"`
	// Path is the extract directory, used in dir mode.
	Path string `mapstructure:"path" default:"extract"`
	// Prefix is the object prefix under the storage bucket, used in bucket mode.
	Prefix string `mapstructure:"prefix" default:"extract"`
}

// IsValidMode checks if the configured source mode is supported.
func (c SourceConfig) IsValidMode() bool {
	switch c.Mode {
	case SourceModeDir, SourceModeBucket:
		return true
	}
	return false
}

// DataConfig holds configuration for the generated catalog output.
type DataConfig struct {
	// Dir is the directory holding the three generated catalog documents.
	Dir string `mapstructure:"dir" default:"data"`
	// Prefix is the object prefix catalogs are published under.
	Prefix string `mapstructure:"prefix" default:"catalogs"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env first so AutomaticEnv sees its variables.
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SOURCE_MODE -> source.mode)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
