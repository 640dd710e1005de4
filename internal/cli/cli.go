// Package cli implements the portfolio subcommands.
package cli

import (
	"fmt"
	"strings"

	"github.com/jojongai/portfolio/internal/config"
	"github.com/jojongai/portfolio/internal/errmsg"
)

// loadConfig reads configuration and wraps failures for display.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%s", errmsg.Format(errmsg.OpConfigLoad, err))
	}
	return cfg, nil
}

// assetOrigin derives the server origin from the API base URL:
// "http://host:8080/api" serves its assets from "http://host:8080".
func assetOrigin(apiURL string) string {
	return strings.TrimSuffix(strings.TrimSuffix(apiURL, "/"), "/api")
}
