package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     Log         `yaml:"log"`
	Server  Server      `yaml:"server"`
	Line    Line        `yaml:"line"`
	OpenAI  ModelConfig `yaml:"openai"`
	Redis   Redis       `yaml:"redis"`
	Session Session     `yaml:"session"`
}

type Server struct {
	// Address to listen on
	Addr string `yaml:"addr" example:":5000"`
}

type Line struct {
	// Channel secret of the messaging API channel, used to verify webhook signatures
	ChannelSecret string `yaml:"channel_secret" example:"d41d8cd98f00b204e9800998ecf8427e" validate:"required"`
	// Long-lived channel access token for the reply API
	ChannelToken string `yaml:"channel_token" example:"token-from-line-developers-console" validate:"required"`
}

type ModelConfig struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1" validate:"required"`
	// OpenAI token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// OpenAI model
	Model string `yaml:"model" example:"gpt-4o-mini" validate:"required"`
}

type Redis struct {
	// Redis address or URL; leave empty to keep sessions in process memory
	Addr string `yaml:"addr" example:"redis://localhost:6379/0"`
}

type Session struct {
	// Session and last-prompt record lifetime in hours
	TTLHours int `yaml:"ttl_hours" example:"24"`
	// Captured field length cap in characters
	TruncateLimit int `yaml:"truncate_limit" example:"500"`
	// Number of reply variants requested per generation
	VariantCount int `yaml:"variant_count" example:"3"`
}

type Log struct {
	// Minimum console log level: debug, info, warn or error
	Level string `yaml:"level" example:"info"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":5000"
	}
	if result.Session.TTLHours == 0 {
		result.Session.TTLHours = 24
	}
	if result.Session.TruncateLimit == 0 {
		result.Session.TruncateLimit = 500
	}
	if result.Session.VariantCount == 0 {
		result.Session.VariantCount = 3
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
