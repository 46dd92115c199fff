package models

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the CLI commands. Non-secret values
// come from config.yaml; API keys come from the environment, optionally
// seeded from a .env file.
type Config struct {
	NotionDatabaseID string `yaml:"notion_db_id"`
	OpenAIModel      string `yaml:"openai_model"`
	OpenAIBaseURL    string `yaml:"openai_base_url"`
	DBPath           string `yaml:"db_path"`

	NotionAPIKey string `yaml:"-"`
	OpenAIAPIKey string `yaml:"-"`
}

// LoadConfig reads the yaml config at path (missing file is fine, defaults
// apply) and overlays environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		OpenAIModel: "gpt-4o-mini",
		DBPath:      "webtonotion.db",
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	if v := os.Getenv("NOTION_DB_ID"); v != "" {
		cfg.NotionDatabaseID = v
	}
	cfg.NotionAPIKey = os.Getenv("NOTION_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")

	return cfg, nil
}

// RequireNotion validates the settings every Notion-backed command needs.
func (c *Config) RequireNotion() error {
	if c.NotionAPIKey == "" {
		return fmt.Errorf("NOTION_API_KEY is not set")
	}
	if c.NotionDatabaseID == "" {
		return fmt.Errorf("notion_db_id is not configured")
	}
	return nil
}
