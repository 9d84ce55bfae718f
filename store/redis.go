// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
)

// addTokenScript runs SADD and INCR inside one script so Redis evaluates
// them atomically. Returns {count, added}.
var addTokenScript = redis.NewScript(`
if redis.call('SADD', KEYS[2], ARGV[1]) == 1 then
	return {redis.call('INCR', KEYS[1]), 1}
end
local count = redis.call('GET', KEYS[1])
if not count then
	return {0, 0}
end
return {tonumber(count), 0}
`)

// RedisStore keeps the count as a Redis string and the tokens as a Redis set
type RedisStore struct {
	client   *redis.Client
	countKey string
	setKey   string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, countKey: CountKey, setKey: TokenSetKey}
}

// OpenRedis builds a client from a redis:// or rediss:// URL. Upstash's
// https:// REST endpoint is accepted too and mapped to its TLS Redis port.
// token, when set, is used as the password.
func OpenRedis(rawURL, token string) (*RedisStore, error) {
	opts, err := RedisOptions(rawURL, token)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(redis.NewClient(opts)), nil
}

func RedisOptions(rawURL, token string) (*redis.Options, error) {
	if strings.HasPrefix(rawURL, "https://") {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		rawURL = "rediss://" + u.Hostname() + ":6379"
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if token != "" {
		opts.Password = token
	}
	// Honor per-call deadlines from the ledger
	opts.ContextTimeoutEnabled = true

	return opts, nil
}

func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	count, err := s.client.Get(ctx, s.countKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", s.countKey, err)
	}
	return count, nil
}

func (s *RedisStore) AddToken(ctx context.Context, token string) (int64, bool, error) {
	res, err := addTokenScript.Run(ctx, s.client, []string{s.countKey, s.setKey}, token).Int64Slice()
	if err != nil {
		return 0, false, fmt.Errorf("redis add token: %w", err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("redis add token: unexpected reply %v", res)
	}
	return res[0], res[1] == 1, nil
}

func (s *RedisStore) Signers(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, s.setKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis scard %s: %w", s.setKey, err)
	}
	return n, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
