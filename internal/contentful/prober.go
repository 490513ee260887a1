package contentful

import (
	"context"
	"log/slog"
	"time"
)

// Prober tests candidate credentials by fetching the space descriptor with a
// short-lived client. It holds no client state of its own.
type Prober struct {
	Timeout time.Duration
	Logger  *slog.Logger
	// BaseURLs overrides scheme and host per API.
	BaseURLs map[API]string
}

// NewProber creates a Prober talking to the production hosts.
func NewProber(timeout time.Duration, logger *slog.Logger) *Prober {
	return &Prober{Timeout: timeout, Logger: logger}
}

// Probe fetches the space descriptor of space through api using token.
func (p *Prober) Probe(ctx context.Context, api API, space, token string) (*Space, error) {
	client, err := NewClient(ClientConfig{
		Space:       space,
		AccessToken: token,
		Host:        api.Host(),
		Timeout:     p.Timeout,
		BaseURL:     p.BaseURLs[api],
		Logger:      p.Logger,
	})
	if err != nil {
		return nil, err
	}
	return client.GetSpace(ctx)
}
