package config

import (
	"os"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Submission endpoint
	APIURL    string
	AuthToken string

	// Where generated WAV files are written and read back from
	OutputDir string
}

// Load reads configuration from environment variables with sane defaults.
// AuthToken has no default; the submitter refuses to run without it.
func Load() Config {
	return Config{
		APIURL:    envStr("RADIO_API_URL", "https://api.apocalypseradio.xyz/graphql"),
		AuthToken: envStr("AUTH_TOKEN", ""),
		OutputDir: envStr("TRACKFORGE_OUTPUT_DIR", "."),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
