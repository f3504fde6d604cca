package config

import (
	"log"
	"os"
)

type Config struct {
	DatabaseURL string
	PublicKey   string // hex, tal cual la muestra el developer portal
	HTTPAddr    string // opcional, default :8080
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		DatabaseURL: get("DATABASE_URL", true),
		PublicKey:   get("DISCORD_PUBLIC_KEY", true),
		HTTPAddr:    get("HTTP_ADDR", false), // puede quedar vacío
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	return cfg
}
