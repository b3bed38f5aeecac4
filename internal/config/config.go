package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type EmailConfig struct {
	// "resend" (HTTP API) or "smtp" (gomail). Defaults to resend when an
	// API key is present, smtp otherwise.
	Provider     string `yaml:"provider"`
	APIKey       string `yaml:"api_key"`
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromAddress  string `yaml:"from_address"`
	AdminAddress string `yaml:"admin_address"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"`
	AdminChatID int64  `yaml:"admin_chat_id"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret    string `yaml:"jwt_secret"`
		SessionHours int    `yaml:"session_hours"`
	} `yaml:"auth"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// LoadConfig reads config/config.yaml (path overridable via CONFIG_PATH)
// and then applies environment overrides, so deployments can run on env
// vars alone with an empty or absent file.
func LoadConfig() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			panic("Failed to parse " + path + ": " + err.Error())
		}
	}

	overrideString(&cfg.Database.DSN, "DATABASE_URL")
	overrideString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	overrideString(&cfg.Email.Provider, "EMAIL_PROVIDER")
	overrideString(&cfg.Email.APIKey, "RESEND_API_KEY")
	overrideString(&cfg.Email.FromAddress, "EMAIL_FROM_ADDRESS")
	overrideString(&cfg.Email.AdminAddress, "ADMIN_NOTIFY_ADDRESS")
	overrideString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	if v := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.AdminChatID = id
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.SessionHours == 0 {
		cfg.Auth.SessionHours = 24
	}
	if cfg.Email.Provider == "" {
		if cfg.Email.APIKey != "" {
			cfg.Email.Provider = "resend"
		} else {
			cfg.Email.Provider = "smtp"
		}
	}
	return &cfg
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
