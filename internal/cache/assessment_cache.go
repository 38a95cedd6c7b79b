package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SkillSync/aiq/internal/store"
)

// AssessmentCache holds completed assessments. Entries never go stale because
// assessments are immutable; the TTL only bounds memory.
type AssessmentCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, id uuid.UUID) (*store.Assessment, error)
	Set(ctx context.Context, a *store.Assessment) error
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAssessmentCache(client *redis.Client, ttl time.Duration) AssessmentCache {
	return &assessmentCache{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient parses url (redis://host:port/db) and checks connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *assessmentCache) key(id uuid.UUID) string {
	return fmt.Sprintf("aiq:assessment:%s", id)
}

func (c *assessmentCache) Get(ctx context.Context, id uuid.UUID) (*store.Assessment, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a store.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *assessmentCache) Set(ctx context.Context, a *store.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(a.ID), data, c.ttl).Err()
}
