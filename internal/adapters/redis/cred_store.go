package redis

// Package redis provides a Redis-backed credential store, for shared or
// ephemeral environments where a local credential file is not durable.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// CredentialStore keeps the credential record under a per-profile key.
type CredentialStore struct {
	client  redis.UniversalClient
	profile string
	prefix  string
}

// NewCredentialStore creates a Redis-backed credential store for the
// given profile name.
func NewCredentialStore(client redis.UniversalClient, profile string) (*CredentialStore, error) {
	if profile == "" {
		return nil, errors.New("profile name is required")
	}
	return &CredentialStore{
		client:  client,
		profile: profile,
		prefix:  "credentials:",
	}, nil
}

func (s *CredentialStore) key() string {
	return s.prefix + s.profile
}

func (s *CredentialStore) Save(ctx context.Context, rec domainauth.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal credential record: %w", err)
	}
	// No TTL: the access token's own expiry governs validity.
	if err := s.client.Set(ctx, s.key(), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *CredentialStore) Load(ctx context.Context) (domainauth.Record, error) {
	data, err := s.client.Get(ctx, s.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Record{}, ports.ErrNoCredentials
		}
		return domainauth.Record{}, fmt.Errorf("redis get: %w", err)
	}

	var rec domainauth.Record
	if unmarshalErr := json.Unmarshal([]byte(data), &rec); unmarshalErr != nil {
		// Malformed data is treated as "no session", not an error.
		return domainauth.Record{}, ports.ErrNoCredentials
	}
	if !rec.Valid() {
		return domainauth.Record{}, ports.ErrNoCredentials
	}
	return rec, nil
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
