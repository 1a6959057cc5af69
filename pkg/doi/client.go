// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package doi

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ClientConfig holds the transport-level knobs for resolver requests. The
// zero value honors environment proxy settings, sends the package default
// User-Agent, and applies no timeout beyond the transport's own defaults.
// A config is read-only once a client is built from it and may be shared
// across many DOI instances.
type ClientConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-level
	// timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with resolver requests
	// (e.g. "doi-resolver/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// DisableEnvProxy stops the client from reading HTTP_PROXY and
	// friends from the environment.
	DisableEnvProxy bool `json:"disable_env_proxy" yaml:"disable_env_proxy"`

	// ProxyURL routes requests through an explicit proxy endpoint. When
	// set it overrides the environment proxy settings regardless of
	// DisableEnvProxy.
	ProxyURL string `json:"proxy_url,omitempty" yaml:"proxy_url,omitempty"`
}

// NewClient assembles an HTTP client from cfg. It fails only when
// cfg.ProxyURL is present and does not parse as a URL.
func NewClient(cfg ClientConfig) (*http.Client, error) {
	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.DisableEnvProxy {
		transport.Proxy = nil
	}
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy URL %q: %w", cfg.ProxyURL, err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}, nil
}
