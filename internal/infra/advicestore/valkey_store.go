package advicestore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/inetready/travel-advisor/internal/domain/traveladvisor"
)

// ValkeyStore caches assessment results in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "advice"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (traveladvisor.TravelRiskResult, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return traveladvisor.TravelRiskResult{}, false, nil
		}
		return traveladvisor.TravelRiskResult{}, false, err
	}
	var result traveladvisor.TravelRiskResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return traveladvisor.TravelRiskResult{}, false, err
	}
	return result, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, key string, result traveladvisor.TravelRiskResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":" + key
}

var _ traveladvisor.AdviceStore = (*ValkeyStore)(nil)
