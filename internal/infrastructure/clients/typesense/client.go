package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/typesense/typesense-go/v2/typesense"

	"github.com/zatekoja/hospital-locator/backend/pkg/config"
	"github.com/zatekoja/hospital-locator/backend/pkg/retry"
)

// Client represents a Typesense client
type Client struct {
	client *typesense.Client
}

// NewClient creates a new Typesense client, retrying the health check with
// exponential backoff until the server answers
func NewClient(ctx context.Context, cfg *config.TypesenseConfig) (*Client, error) {
	client := typesense.NewClient(
		typesense.WithServer(cfg.URL),
		typesense.WithAPIKey(cfg.APIKey),
		typesense.WithConnectionTimeout(5*time.Second),
	)

	retryConfig := retry.DefaultConfig()
	retryConfig.OnRetry = func(attempt int, err error, nextDelay time.Duration) {
		log.Warn().Err(err).
			Int("attempt", attempt).
			Dur("next_delay", nextDelay).
			Msg("Typesense connection attempt failed")
	}

	err := retry.Do(ctx, retryConfig, "typesense", func(ctx context.Context) error {
		healthy, err := client.Health(ctx, 2*time.Second)
		if err != nil {
			return err
		}
		if !healthy {
			return fmt.Errorf("typesense at %s reports unhealthy", cfg.URL)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Typesense after retries: %w", err)
	}

	log.Info().Str("url", cfg.URL).Msg("Connected to Typesense")
	return &Client{client: client}, nil
}

// Client returns the underlying Typesense client
func (c *Client) Client() *typesense.Client {
	return c.client
}
