package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller, derived from the external identity
// provider's token claims. UserID is the provider's subject.
type Identity struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type IdentityProvider struct {
	cfg  *OIDCConfig
	jwks keyfunc.Keyfunc
}

func NewIdentityProvider(ctx context.Context, cfg *OIDCConfig) (*IdentityProvider, error) {
	if cfg.Mode == "dev" {
		return &IdentityProvider{cfg: cfg}, nil
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	jwks, err := keyfunc.NewDefaultCtx(timeoutCtx, []string{cfg.IssuerURL})
	if err != nil {
		return nil, fmt.Errorf("failed to get JWKS: %v", err)
	}
	return &IdentityProvider{cfg: cfg, jwks: jwks}, nil
}

func (p *IdentityProvider) GetIdentity(tokenString string) (*Identity, error) {
	if p.cfg.Mode == "dev" && p.cfg.TestUser != "" {
		return &Identity{UserID: p.cfg.TestUser}, nil
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, p.jwks.Keyfunc, jwt.WithLeeway(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("identity can't be retrieved, %v", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token has no sub claim")
	}

	identity := &Identity{UserID: sub}
	identity.Email, _ = claims["email"].(string)
	identity.FirstName, _ = claims["first_name"].(string)
	identity.LastName, _ = claims["last_name"].(string)
	identity.ProfileImageURL, _ = claims["profile_image_url"].(string)
	return identity, nil
}
