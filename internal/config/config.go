package config

import (
	"fmt"
	"log"
	"os"
)

// Modos de autenticação: lista fixa em memória (senha em texto puro) ou
// tabela usuarios no banco (senha com bcrypt).
const (
	AuthModeMemory = "memory"
	AuthModeDB     = "db"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string
	AuthMode   string
	RedisAddr  string
	RedisPass  string
}

func Load() *Config {
	cfg := &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		AuthMode:   getEnv("AUTH_MODE", AuthModeDB),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is required")
	}

	if cfg.AuthMode != AuthModeMemory && cfg.AuthMode != AuthModeDB {
		log.Fatalf("invalid AUTH_MODE %q (expected %q or %q)",
			cfg.AuthMode, AuthModeMemory, AuthModeDB)
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
