package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Dir: filepath.Join("data", "briefs"),
		},
	}
}

// Load builds the config from defaults, an optional YAML file
// (BF_CONFIG_PATH, falling back to ./config/config.yaml), and env overrides,
// in that order of precedence.
func Load() (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("BF_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}

	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("LOG_MODE")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("BRIEF_DATA_DIR")); v != "" {
		cfg.Store.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv("BF_ALLOW_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.HTTP.AllowOrigins = origins
	}

	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		return nil, fmt.Errorf("http.addr required")
	}
	if strings.TrimSpace(cfg.Store.Dir) == "" {
		return nil, fmt.Errorf("store.dir required")
	}
	return cfg, nil
}
