// Package config loads application configuration with Viper.
//
// Values come from, in increasing priority: `default` struct tags, config.yaml,
// a .env file and environment variables. Nested keys map to upper-case
// environment names, so reconcile.cache_ttl_seconds is RECONCILE_CACHE_TTL_SECONDS.
//
// # Configuration Structure
//
//   - Server: port, API key, upload limit
//   - Database: run history driver (sqlite or mysql) and connection
//   - Storage: S3/MinIO credentials, bucket and folder prefixes
//   - Log: level and format
//   - Reconcile: cache TTL, unkeyed row reporting, history page size
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
