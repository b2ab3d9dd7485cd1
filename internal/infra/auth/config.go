package auth

import (
	"os"

	"github.com/vitrinehq/vitrine-backend/pkg/env"
)

type OIDCConfig struct {
	// IssuerURL hosts the JWKS used to verify bearer tokens.
	IssuerURL string
	Mode      string
	TestUser  string
}

func NewOIDCConfig() *OIDCConfig {
	return &OIDCConfig{
		IssuerURL: os.Getenv("OIDC_ISSUER"),
		Mode:      env.GetEnv("MODE", "prod"),
		TestUser:  os.Getenv("TEST_USER"),
	}
}
