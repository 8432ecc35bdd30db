package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	if p := os.Getenv("MRT_CONFIG"); p != "" {
		paths = []string{p}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Network); err != nil {
		return err
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 8080
	}
	if Config.Logging.Level == "" {
		Config.Logging.Level = "info"
	}
	return nil
}
