package config

import "os"

type Config struct {
	DBPath      string
	DatabaseURL string
	Port        string
	GinMode     string
}

func LoadConfig() Config {
	cfg := Config{
		DBPath:      os.Getenv("DB_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		GinMode:     os.Getenv("GIN_MODE"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "goodlife_schema.db"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}
