package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Session struct {
		CookieName string `yaml:"cookie_name"`
		TTLHours   int    `yaml:"ttl_hours"`
		Secure     bool   `yaml:"secure"`
	} `yaml:"session"`

	Auth struct {
		ResetTokenSecret   string `yaml:"reset_token_secret"`
		ResetTokenTTLHours int    `yaml:"reset_token_ttl_hours"`
		ResetURLBase       string `yaml:"reset_url_base"`
	} `yaml:"auth"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local or s3
		BasePath  string `yaml:"base_path"`  // for local storage
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // for S3
		Region    string `yaml:"region"`     // for S3
		AccessKey string `yaml:"access_key"` // for S3
		SecretKey string `yaml:"secret_key"` // for S3
		Endpoint  string `yaml:"endpoint"`   // custom S3 endpoint
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // allowed MIME types
		ImageQuality int      `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config from environment
// variables when DATABASE_URL is set (test and container deployments).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.ResetTokenSecret = os.Getenv("RESET_TOKEN_SECRET")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/files"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "sessionid"
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24 * 14
	}
	if cfg.Auth.ResetTokenTTLHours == 0 {
		cfg.Auth.ResetTokenTTLHours = 1
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
		}
	}
	if cfg.Upload.ImageQuality == 0 {
		cfg.Upload.ImageQuality = 85
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
