// Package config provides configuration management for the processo manager.
//
// It utilizes Viper for loading configuration from environment variables and a .env
// file. Defaults live next to each partial configuration as `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: optional SQL source (mysql or sqlite)
//   - Storage: S3/MinIO credentials, bucket and publish prefix
//   - Log: Logging level and format
//   - Reconcile: key, parity and last columns, carry columns, mode, malformed key policy
//   - Dias: parity report columns
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Reconcile.KeyColumn)
package config
