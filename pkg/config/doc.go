// Package config loads sheetverify configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are applied to the process environment first, then
// the environment is parsed into a struct using field tags.
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Config carries the engine and logging settings read by cmd/sheetverify.
// Library users can load their own structs with the same Load helper.
package config
