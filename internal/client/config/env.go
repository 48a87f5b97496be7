package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables understood by the client. The API key is the
// out-of-band secret; the rest are local-setup overrides.
const (
	envAPIKey   = "PROOFPOST_API_KEY"
	envBaseURL  = "PROOFPOST_BASE_URL"
	envFilesDir = "PROOFPOST_FILES_DIR"
	envProjects = "PROOFPOST_PROJECTS"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the real environment are not overridden by it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envFilesDir); v != "" {
		cfg.FilesDir = v
	}
	if v := os.Getenv(envProjects); v != "" {
		cfg.Projects = splitList(v)
	}
}

// splitList parses a comma-separated list, dropping empty elements.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
