package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotEnvFiles lists the .env files for appEnv, highest priority first
func dotEnvFiles(appEnv string) []string {
	var files []string
	if appEnv != "" {
		files = append(files, ".env."+appEnv+".local", ".env."+appEnv)
	}
	return append(files, ".env.local", ".env")
}

// LoadDotEnv loads the .env files found in dir. With APP_ENV=staging the order is
// .env.staging.local > .env.staging > .env.local > .env.
// godotenv never overwrites a set variable, so the process environment always wins
// and APP_ENV itself is only read from it.
// Returns the files actually loaded.
func LoadDotEnv(dir string) []string {
	var loaded []string
	for _, name := range dotEnvFiles(os.Getenv("APP_ENV")) {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			loaded = append(loaded, path)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
