// Package config loads environment-backed configuration structs.
//
// It parses `env` struct tags via caarlos0/env, bootstraps a local .env file
// once through godotenv, and caches each configuration type so repeated
// loads across the application return the same values.
//
//	type LocaleConfig struct {
//		Default   string   `env:"LOCALE_DEFAULT" envDefault:"en"`
//		Supported []string `env:"LOCALE_SUPPORTED" envDefault:"en,th"`
//	}
//
//	var cfg LocaleConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and suits configuration the process cannot run
// without.
package config
