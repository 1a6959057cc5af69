// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package doi identifies documents by Digital Object Identifier, resolves
// them to their publisher location through the doi.org redirector, and
// fetches bibliographic metadata from the same endpoint via content
// negotiation.
//
// The package performs exactly one blocking HTTP request per operation. It
// never retries, never caches, and reports every failure as a returned
// error value.
package doi

import (
	"net/http"
	"strings"
)

// resolverBase is the doi.org resolver endpoint. Declared as a var so tests
// can substitute an httptest server.
var resolverBase = "https://doi.org/"

// defaultUserAgent is sent when no ClientConfig overrides it.
const defaultUserAgent = "doi-resolver/0.1"

// defaultClient honors environment proxy settings through
// http.DefaultTransport. Shared by every DOI constructed without an
// explicit ClientConfig.
var defaultClient = &http.Client{}

// DOI is a Digital Object Identifier for a document. The zero value is an
// unset identifier; operations that need the value fail with ErrNotSet
// until Set is called.
//
// Each DOI owns its HTTP client handle exclusively. The client follows
// redirects, which is what Resolve relies on to discover the final
// publisher URL.
type DOI struct {
	value     string
	set       bool
	client    *http.Client
	userAgent string
}

// New returns a DOI holding value verbatim. No trimming or case folding is
// applied; Equal is the only place case is normalized.
func New(value string) *DOI {
	return &DOI{value: value, set: true}
}

// NewWithConfig returns a DOI whose requests go through a client assembled
// from cfg. It fails when cfg carries a proxy URL that does not parse.
func NewWithConfig(value string, cfg ClientConfig) (*DOI, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	d := New(value)
	d.client = client
	d.userAgent = cfg.UserAgent
	return d, nil
}

// IsSet reports whether the DOI value is present.
func (d *DOI) IsSet() bool {
	return d.set
}

// Get returns the DOI value, or ErrNotSet when absent.
func (d *DOI) Get() (string, error) {
	if !d.set {
		return "", ErrNotSet
	}
	return d.value, nil
}

// Set replaces the DOI value unconditionally.
func (d *DOI) Set(value string) {
	d.value = value
	d.set = true
}

// Equal reports whether two identifiers name the same document. Values are
// compared case-insensitively; two unset identifiers are equal; a set and
// an unset identifier never are.
func (d *DOI) Equal(other *DOI) bool {
	if d.set != other.set {
		return false
	}
	if !d.set {
		return true
	}
	return strings.EqualFold(d.value, other.value)
}

// ResolverURL returns the resolver endpoint for the DOI, the plain
// concatenation of the doi.org base and the value with no escaping.
// Fails with ErrNotSet when the value is absent.
func (d *DOI) ResolverURL() (string, error) {
	value, err := d.Get()
	if err != nil {
		return "", err
	}
	return resolverBase + value, nil
}

// Resolve follows the doi.org redirect chain and returns the final URL,
// the document's current publisher location. The response body is ignored.
//
// The resolver answers 418 on some successful resolutions; the redirects
// have already been followed at that point, so 418 still yields the final
// URL. Every other non-2xx status and every transport failure is returned
// as a *TransportError.
func (d *DOI) Resolve() (string, error) {
	target, err := d.ResolverURL()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodHead, target, nil)
	if err != nil {
		return "", &TransportError{URL: target, Err: err}
	}
	req.Header.Set("User-Agent", d.agent())

	resp, err := d.httpClient().Do(req)
	if err != nil {
		return "", &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if !statusOK(resp.StatusCode) && resp.StatusCode != http.StatusTeapot {
		return "", &TransportError{URL: target, StatusCode: resp.StatusCode}
	}

	// The client rewrites resp.Request while following redirects, so its
	// URL is the final location after the whole chain.
	return resp.Request.URL.String(), nil
}

func (d *DOI) httpClient() *http.Client {
	if d.client != nil {
		return d.client
	}
	return defaultClient
}

func (d *DOI) agent() string {
	if d.userAgent != "" {
		return d.userAgent
	}
	return defaultUserAgent
}

func statusOK(code int) bool {
	return code >= 200 && code < 300
}
