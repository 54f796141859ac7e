package session

import (
	"context"
	"errors"
	"podium-service/internal/app/models"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(encoded)
	m.ttls[key] = exp
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRedis) Increment(ctx context.Context, key string) error {
	return errors.New("not supported")
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, errors.New("not supported")
}

func TestSessionService_Lifecycle(t *testing.T) {
	redis := newMemoryRedis()
	svc := NewSessionService(redis)
	ctx := context.Background()

	session := &models.Session{SessionID: "abc", Username: "ana", Role: "admin"}
	require.NoError(t, svc.CreateSession(ctx, session, time.Hour))
	assert.Equal(t, time.Hour, redis.ttls["session:staff:abc"])

	got, err := svc.GetSession(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, "admin", got.Role)

	require.NoError(t, svc.DeleteSession(ctx, "abc"))
	got, err = svc.GetSession(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionService_CorruptPayload(t *testing.T) {
	redis := newMemoryRedis()
	redis.data["session:staff:bad"] = "{not json"
	svc := NewSessionService(redis)

	_, err := svc.GetSession(context.Background(), "bad")
	assert.Error(t, err)
}
