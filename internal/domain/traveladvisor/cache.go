package traveladvisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// AdviceStore caches assessment results keyed by user and city pair.
type AdviceStore interface {
	Get(ctx context.Context, key string) (TravelRiskResult, bool, error)
	Save(ctx context.Context, key string, result TravelRiskResult, ttl time.Duration) error
}

type cachedService struct {
	inner  Service
	store  AdviceStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedService wraps a Service with result caching. Only requests tied
// to a user and without caller-supplied heat readings are cached; everything
// else passes straight through so the core stays a fresh computation per
// call. Store failures are logged and treated as misses.
func NewCachedService(inner Service, store AdviceStore, ttl time.Duration, logger *slog.Logger) Service {
	return &cachedService{
		inner:  inner,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "traveladvisor.cache"),
	}
}

func (s *cachedService) Assess(ctx context.Context, req Request) (TravelRiskResult, error) {
	if !cacheable(req) {
		return s.inner.Assess(ctx, req)
	}

	key := adviceKey(req)
	if cached, found, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("advice cache read failed", "key", key, "error", err)
	} else if found {
		return cached, nil
	}

	result, err := s.inner.Assess(ctx, req)
	if err != nil {
		return result, err
	}
	if err := s.store.Save(ctx, key, result, s.ttl); err != nil {
		s.logger.Warn("advice cache write failed", "key", key, "error", err)
	}
	return result, nil
}

func cacheable(req Request) bool {
	return req.UserID != "" && req.FromHeat == nil && req.ToHeat == nil
}

func adviceKey(req Request) string {
	from := strings.ToLower(NormalizeCity(req.FromCity))
	to := strings.ToLower(NormalizeCity(req.ToCity))
	return fmt.Sprintf("%s|%s|%s", req.UserID, from, to)
}
