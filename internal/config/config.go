package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// Telegram
	BotToken string

	// Ledger
	LedgerBackend string
	LedgerPath    string
	SQLiteDBPath  string

	// Audio / transcription
	AudioDir     string
	FFmpegBin    string
	WhisperBin   string
	WhisperModel string

	// AMQP mirror (empty URL disables mirroring)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		BotToken: getEnv("BOT_TOKEN", ""),

		LedgerBackend: getEnv("LEDGER_BACKEND", "csv"),
		LedgerPath:    getEnv("LEDGER_PATH", "./data/expenses.csv"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/voicespend.db"),

		AudioDir:     getEnv("AUDIO_DIR", os.TempDir()),
		FFmpegBin:    getEnv("FFMPEG_BIN", "ffmpeg"),
		WhisperBin:   getEnv("WHISPER_BIN", "whisper-cli"),
		WhisperModel: getEnv("WHISPER_MODEL", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "voicespend"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "mirror_records"),
	}
}

// MirrorEnabled reports whether records should be published for mirroring.
func (c *Config) MirrorEnabled() bool {
	return c.AMQPURL != ""
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// The bot cannot start without its token
	if c.BotToken == "" {
		errors = append(errors, "BOT_TOKEN is required")
	}

	validBackends := []string{"csv", "sqlite", "memory"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.LedgerBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid ledger backend '%s': must be one of %v", c.LedgerBackend, validBackends))
	}

	switch c.LedgerBackend {
	case "csv":
		if c.LedgerPath == "" {
			errors = append(errors, "ledger path cannot be empty when using csv backend")
		} else {
			errors = append(errors, ensureDir(filepath.Dir(c.LedgerPath))...)
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			errors = append(errors, ensureDir(filepath.Dir(c.SQLiteDBPath))...)
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.FFmpegBin == "" {
		errors = append(errors, "ffmpeg binary path cannot be empty")
	}
	if c.WhisperBin == "" {
		errors = append(errors, "whisper binary path cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureDir(dir string) []string {
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return []string{fmt.Sprintf("cannot create directory '%s': %v", dir, err)}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
