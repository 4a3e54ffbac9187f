package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/rosterd/internal/config"
	"go.uber.org/zap"
)

const keyRosterSubmitBranch = "roster:submit:branch:%s"

var ErrRateLimited = errors.New("rate_limited")

// SubmissionLimiter bounds roster submissions per branch. Disabled when
// no redis address is configured; a disabled limiter allows everything.
type SubmissionLimiter struct {
	enabled bool

	bucket *TokenBucket
	rate   float64
	burst  int
	log    *zap.Logger
}

func NewSubmissionLimiter(cfg config.Config, log *zap.Logger) (*SubmissionLimiter, error) {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return &SubmissionLimiter{enabled: false}, nil
	}
	if cfg.SubmitRate <= 0 || cfg.SubmitBurst <= 0 {
		return nil, errors.New("submission rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &SubmissionLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    cfg.SubmitRate,
		burst:   cfg.SubmitBurst,
		log:     log.Named("ratelimit.submission"),
	}, nil
}

func (l *SubmissionLimiter) Enabled() bool {
	return l != nil && l.enabled
}

// Allow consumes one token for the branch. Redis being unreachable
// fails open: a degraded limiter must not take submissions down with it.
func (l *SubmissionLimiter) Allow(ctx context.Context, branchID snowflake.ID) error {
	if !l.Enabled() {
		return nil
	}

	allowed, err := l.bucket.Allow(ctx, fmt.Sprintf(keyRosterSubmitBranch, branchID.String()), l.rate, l.burst)
	if err != nil {
		l.log.Warn("rate limiter unavailable, allowing request", zap.Error(err))
		return nil
	}
	if !allowed {
		return ErrRateLimited
	}
	return nil
}
