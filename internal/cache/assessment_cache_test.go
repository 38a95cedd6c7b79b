package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillSync/aiq/internal/aiq"
	"github.com/SkillSync/aiq/internal/store"
)

func newTestCache(t *testing.T, ttl time.Duration) (AssessmentCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAssessmentCache(client, ttl), mr
}

func sampleAssessment() *store.Assessment {
	return &store.Assessment{
		ID:           uuid.MustParse("6f1c1e4e-0d7a-4d1b-9f43-5d3c2b1a0e9f"),
		UserID:       "user-1",
		Answers:      []int{4, 3, 4, 2, 4, 3, 4, 1, 4, 3},
		Capabilities: aiq.Capabilities{U: 89, P: 56, C: 100, R: 67, E: 50, S: 67, Co: 100, F: 33},
		Type:         aiq.SpeedExecutor,
		Confidence:   0.47,
		CompletedAt:  time.Date(2026, 5, 1, 11, 59, 30, 123456789, time.UTC),
		CreatedAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAssessmentKey(t *testing.T) {
	c := &assessmentCache{}
	id := uuid.MustParse("6f1c1e4e-0d7a-4d1b-9f43-5d3c2b1a0e9f")
	assert.Equal(t, "aiq:assessment:6f1c1e4e-0d7a-4d1b-9f43-5d3c2b1a0e9f", c.key(id))
}

func TestSetThenGet(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()
	want := sampleAssessment()

	require.NoError(t, c.Set(ctx, want))

	got, err := c.Get(ctx, want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Answers, got.Answers)
	assert.Equal(t, want.Capabilities, got.Capabilities)
	assert.Equal(t, aiq.SpeedExecutor, got.Type)
	assert.Equal(t, want.Confidence, got.Confidence)
	assert.True(t, got.CompletedAt.Equal(want.CompletedAt), "completed_at %v != %v", got.CompletedAt, want.CompletedAt)
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt), "created_at %v != %v", got.CreatedAt, want.CreatedAt)
}

func TestGetMissReturnsNil(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	got, err := c.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetAppliesTTL(t *testing.T) {
	c, mr := newTestCache(t, 90*time.Second)
	ctx := context.Background()
	a := sampleAssessment()

	require.NoError(t, c.Set(ctx, a))
	key := "aiq:assessment:" + a.ID.String()
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 90*time.Second, mr.TTL(key))

	mr.FastForward(91 * time.Second)
	got, err := c.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "entry must expire after the TTL")
}

func TestGetCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	id := uuid.New()
	require.NoError(t, mr.Set("aiq:assessment:"+id.String(), "{not json"))

	got, err := c.Get(context.Background(), id)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	client.Close()
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-url")
	assert.Error(t, err)
}

func TestUnreachableRedisReturnsErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	c := NewAssessmentCache(client, time.Minute)
	mr.Close()

	ctx := context.Background()
	got, err := c.Get(ctx, uuid.New())
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Error(t, c.Set(ctx, sampleAssessment()))
}
