package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server captures process-level configuration so main stays lean.
type Server struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

// FromEnv builds a Server config from environment variables, overlaying an
// optional YAML file named by FAREGATE_CONFIG. Env values win over file
// values so deployments can override a checked-in config.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:     ":8080",
		LogLevel: "info",
	}

	if path := os.Getenv("FAREGATE_CONFIG"); path != "" {
		fileCfg, err := fromFile(path)
		if err != nil {
			return Server{}, err
		}
		cfg = cfg.merge(fileCfg)
	}

	cfg = cfg.merge(Server{
		Addr:     os.Getenv("FAREGATE_ADDR"),
		LogLevel: os.Getenv("FAREGATE_LOG_LEVEL"),
	})
	return cfg, nil
}

func fromFile(path string) (Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Server{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Server
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Server{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays non-empty fields of other onto c.
func (c Server) merge(other Server) Server {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	return c
}
