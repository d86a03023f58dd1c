package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

//go:embed data/terms.json
var embeddedTerms []byte

// LoadError reports a failed catalog load, naming the source tried.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ProviderConfig selects where the catalog document comes from.
type ProviderConfig struct {
	// File is a local catalog document. Takes priority when set.
	File string

	// URL is a remote catalog document, fetched over HTTP.
	URL string

	// Timeout bounds the remote fetch. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is the remote fetch timeout when none is configured.
const DefaultTimeout = 15 * time.Second

// Provider loads the catalog document from a local file, a remote URL,
// or the embedded starter dataset, in that order of preference.
type Provider struct {
	cfg    ProviderConfig
	client *resty.Client
}

// NewProvider creates a Provider for the given config.
func NewProvider(cfg ProviderConfig) *Provider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	return &Provider{cfg: cfg, client: client}
}

// Load fetches, validates, and decodes the catalog. It is a one-shot
// request/response operation; the caller shows a loading state until
// it returns. On failure the caller keeps its prior (empty) state.
func (p *Provider) Load(ctx context.Context) ([]Term, error) {
	source, data, err := p.fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	terms, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	log.WithFields(log.Fields{
		"source": source,
		"terms":  len(terms),
	}).Info("catalog loaded")
	return terms, nil
}

func (p *Provider) fetch(ctx context.Context) (source string, data []byte, err error) {
	if p.cfg.File != "" {
		data, err = os.ReadFile(p.cfg.File)
		return p.cfg.File, data, err
	}

	if p.cfg.URL != "" {
		resp, err := p.client.R().
			SetContext(ctx).
			Get(p.cfg.URL)
		if err != nil {
			return p.cfg.URL, nil, err
		}
		if resp.IsError() {
			return p.cfg.URL, nil, fmt.Errorf("HTTP %d %s", resp.StatusCode(), resp.Status())
		}
		return p.cfg.URL, resp.Bytes(), nil
	}

	return "embedded", embeddedTerms, nil
}
