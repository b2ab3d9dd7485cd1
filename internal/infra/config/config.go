package config

import (
	"github.com/vitrinehq/vitrine-backend/pkg/env"
)

type ServerConfig struct {
	Port       string
	CORSOrigin string
	// Timezone used when deriving day buckets server-side.
	Timezone string
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:       env.GetEnv("PORT", "8080"),
		CORSOrigin: env.GetEnv("CORS_ORIGIN", "http://localhost:3000"),
		Timezone:   env.GetEnv("TIMEZONE", "America/Sao_Paulo"),
	}
}
