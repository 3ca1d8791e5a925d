// Package config provides configuration management for the sync tool.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared on the struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Source: where the game data extract is read from (dir or bucket mode)
//   - Data: the catalog output directory and publish prefix
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Server: catalog HTTP server settings
//
// Environment variables map onto nested keys with underscores, so SOURCE_MODE
// sets source.mode and STORAGE_BUCKET sets storage.bucket.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Data.Dir)
package config
