// Package config loads generator defaults from environment variables into
// tagged structs such as avatar.Config and nickname.Config.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default `.env` file is read once (a missing file is fine);
//   - LoadEnv reads additional files explicitly;
//   - Load parses the environment into any struct using `env` tags and
//     caches the result per type, so later calls are served from memory.
//
// # Usage
//
//	var cfg avatar.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	opts, err := cfg.Options()
//
// # Errors
//
//   - ErrParsingConfig  the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile an explicitly requested .env file could not be read.
//   - ErrNilPointer     a nil pointer was passed to Load.
//
// Use ResetCache in tests that change the environment between loads.
package config
