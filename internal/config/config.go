package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	BackendURL string
	LogLevel   string
	LogFormat  string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:5000"
	}
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "json"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, BackendURL: backend, LogLevel: level, LogFormat: format, LogFile: logFile}
	log.Printf("[config] PORT=%s BACKEND_URL=%s LOG_LEVEL=%s LOG_FORMAT=%s LOG_FILE=%s",
		cfg.Port, cfg.BackendURL, cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	return cfg
}
