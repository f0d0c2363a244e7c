package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Staging StagingConfig
	Engines EnginesConfig
}

type ServerConfig struct {
	Addr            string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type StagingConfig struct {
	Dir           string        `env:"STAGING_DIR" env-default:"tmp/staging"`
	MaxUploadSize int64         `env:"MAX_UPLOAD_SIZE" env-default:"26214400"`
	StaleAfter    time.Duration `env:"STAGING_STALE_AFTER" env-default:"1h"`
}

type EnginesConfig struct {
	FFmpegBinary   string        `env:"FFMPEG_BINARY" env-default:"ffmpeg"`
	FFmpegTimeout  time.Duration `env:"FFMPEG_TIMEOUT" env-default:"2m"`
	SofficeBinary  string        `env:"SOFFICE_BINARY" env-default:"soffice"`
	SofficeTimeout time.Duration `env:"SOFFICE_TIMEOUT" env-default:"2m"`
}

func MustLoad() (*Config, error) {
	// A .env file is a local-dev convenience; its absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &cfg, nil
}
