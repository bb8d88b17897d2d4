package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 管理端运行设置。
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SessionConfig struct {
	File string `yaml:"file"`
}

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// LoadFromFile 从 YAML 组态文件载入设置。文件缺失不算错误，
// 全部走默认值与环境变量。
func LoadFromFile(path string) (Config, error) {
	// 尝试载入 .env 文件（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "/api"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("LOSTFOUND_API_BASE_URL"); val != "" {
		cfg.API.BaseURL = val
	}
	if val := os.Getenv("LOSTFOUND_API_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.API.Timeout = d
		}
	}
	if val := os.Getenv("LOSTFOUND_SESSION_FILE"); val != "" {
		cfg.Session.File = val
	}
	if val := os.Getenv("LOSTFOUND_DEBUG"); val != "" {
		cfg.Log.Debug = (val == "true")
	}
	return cfg
}
