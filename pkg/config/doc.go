// Package config loads configuration structs from the environment and from
// YAML files.
//
// Load parses env-tagged structs with github.com/caarlos0/env/v11 and caches
// the result per type, so every package can call it for its own settings
// without re-parsing. A .env file is picked up through github.com/joho/godotenv;
// LoadEnv loads explicit files instead.
//
// LoadFile reads a YAML document with gopkg.in/yaml.v3 on top of the struct's
// envDefault values. Session namespaces use it to describe several managers
// in one file.
//
// # Usage
//
//	var cfg backend.Config
//	config.MustLoad(&cfg)
//
//	var file AppFile
//	if err := config.LoadFile("sessions.yaml", &file); err != nil {
//		return err
//	}
//
// ResetCache drops cached values; tests that change the environment between
// Load calls need it.
package config
