// Package config provides configuration management for the inventory service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each field with a `default` tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, team cookie name)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the bucket BOM uploads are archived in
//   - Log: Logging level and format
//   - Redis: Optional Redis used to serialize BOM runs across instances
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
