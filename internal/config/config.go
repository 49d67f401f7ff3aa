package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"profitbot/internal/domain"
)

const defaultMigrationsPath = "migrations"

type Config struct {
	DiscordToken    string
	GuildID         string
	TelegramToken   string
	DatabaseURL     string
	MigrationsPath  string
	DefaultLanguage domain.Language
	RoundingMode    domain.RoundingMode
	LocalesDir      string
}

// Load reads envFile (optional, ".env" when empty) into the environment, then
// builds and validates the configuration from environment variables.
func Load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := &Config{
		DiscordToken:   firstEnv("DISCORD_TOKEN", "TOKEN"),
		GuildID:        strings.TrimSpace(os.Getenv("GUILD_ID")),
		TelegramToken:  strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MigrationsPath: strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
		LocalesDir:     strings.TrimSpace(os.Getenv("LOCALES_DIR")),
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	if err := cfg.validate(os.Getenv("DEFAULT_LANGUAGE"), os.Getenv("ROUNDING_MODE")); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile is a no-op when the default .env is absent; an explicitly
// named file must exist.
func loadEnvFile(envFile string) error {
	if envFile == "" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: read .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("config: read %s: %w", envFile, err)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) validate(defaultLanguage, roundingMode string) error {
	if c.DiscordToken == "" && c.TelegramToken == "" {
		return fmt.Errorf("config: DISCORD_TOKEN or TELEGRAM_TOKEN is required")
	}

	if strings.TrimSpace(defaultLanguage) == "" {
		c.DefaultLanguage = domain.LanguagePersian
	} else {
		lang, err := domain.ParseLanguage(strings.ToLower(strings.TrimSpace(defaultLanguage)))
		if err != nil {
			return fmt.Errorf("config: DEFAULT_LANGUAGE: %w", err)
		}
		c.DefaultLanguage = lang
	}

	mode, err := domain.ParseRoundingMode(roundingMode)
	if err != nil {
		return fmt.Errorf("config: ROUNDING_MODE: %w", err)
	}
	c.RoundingMode = mode

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord server ID (digits only)")
		}
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL: missing scheme or host")
		}
	}

	return nil
}

// UseDatabase reports whether preferences are stored in PostgreSQL.
func (c *Config) UseDatabase() bool { return c.DatabaseURL != "" }
