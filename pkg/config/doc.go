// Package config loads environment-driven configuration structs for the
// desktop host's services. It wraps github.com/caarlos0/env for tag-based
// parsing and github.com/joho/godotenv for an optional .env bootstrap,
// performed once per process.
//
// # Usage
//
//	type RedisConfig struct {
//	    URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	}
//
//	var cfg RedisConfig
//	config.MustLoad(&cfg)
//
// Load returns ErrParsingConfig (joined with the underlying parse error) when
// a tag cannot be satisfied; MustLoad panics instead, for configuration the
// process cannot run without.
package config
