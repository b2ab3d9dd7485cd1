// Package deploy fabricates a hosting URL for a site. No real deployment
// happens: the storefront is served from the site's slug, and the external
// hosting provider is referenced by URL convention only.
package deploy

import (
	"fmt"
	"time"

	"github.com/vitrinehq/vitrine-backend/pkg/env"
)

type Config struct {
	BaseDomain string
}

func NewConfig() *Config {
	return &Config{
		BaseDomain: env.GetEnv("DEPLOY_BASE_DOMAIN", "netlify.app"),
	}
}

type Deployer struct {
	cfg *Config
}

func NewDeployer(cfg *Config) *Deployer {
	return &Deployer{cfg: cfg}
}

func (d *Deployer) Deploy(slug string) (url, id string) {
	url = fmt.Sprintf("https://%s.%s", slug, d.cfg.BaseDomain)
	id = fmt.Sprintf("site-%d", time.Now().UnixMilli())
	return url, id
}
