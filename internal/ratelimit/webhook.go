package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/vowsuite/vowsuite/internal/config"
)

const (
	keyWebhookProvider = "webhook:provider:%s"
	keyWebhookSource   = "webhook:source:%s"
)

// ErrRateLimited is returned when a bucket has no tokens left.
var ErrRateLimited = errors.New("rate_limited")

// WebhookLimiter throttles inbound billing webhooks per provider and
// per source address. A nil limiter allows everything, so deployments
// without redis run unthrottled.
type WebhookLimiter struct {
	bucket *TokenBucket

	providerRate  float64
	providerBurst int
	sourceRate    float64
	sourceBurst   int
}

func NewWebhookLimiter(cfg config.Config) (*WebhookLimiter, error) {
	if !cfg.RateLimitEnabled {
		return nil, nil
	}

	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if cfg.WebhookProviderRate <= 0 || cfg.WebhookProviderBurst <= 0 {
		return nil, errors.New("webhook provider rate limit must be positive")
	}
	if cfg.WebhookSourceRate <= 0 || cfg.WebhookSourceBurst <= 0 {
		return nil, errors.New("webhook source rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("rate limit redis ping: %w", err)
	}

	return &WebhookLimiter{
		bucket:        NewTokenBucket(client),
		providerRate:  cfg.WebhookProviderRate,
		providerBurst: cfg.WebhookProviderBurst,
		sourceRate:    cfg.WebhookSourceRate,
		sourceBurst:   cfg.WebhookSourceBurst,
	}, nil
}

func (l *WebhookLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

// Allow checks both the provider bucket and the source bucket. Redis
// being down fails open: a throttle outage must not drop plan events.
func (l *WebhookLimiter) Allow(ctx context.Context, provider, source string) error {
	if !l.Enabled() {
		return nil
	}

	ok, err := l.bucket.Allow(ctx,
		fmt.Sprintf(keyWebhookProvider, strings.TrimSpace(provider)),
		l.providerRate, l.providerBurst,
	)
	if err != nil {
		return nil
	}
	if !ok {
		return ErrRateLimited
	}

	ok, err = l.bucket.Allow(ctx,
		fmt.Sprintf(keyWebhookSource, strings.TrimSpace(source)),
		l.sourceRate, l.sourceBurst,
	)
	if err != nil {
		return nil
	}
	if !ok {
		return ErrRateLimited
	}
	return nil
}
