package intake

import (
	"context"
	"fmt"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type draftRedisStore struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewDraftRedisStore(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.IntakeDraftStore {
	return &draftRedisStore{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func draftKey(visitID string) string {
	return fmt.Sprintf(constvars.RedisKeyIntakeDraftFormat, visitID)
}

// Load returns nil without error when no draft exists.
func (s *draftRedisStore) Load(ctx context.Context, visitID string) (*models.IntakeDraft, error) {
	raw, err := s.RedisRepository.Get(ctx, draftKey(visitID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	draft := new(models.IntakeDraft)
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return draft, nil
}

func (s *draftRedisStore) Save(ctx context.Context, visitID string, draft *models.IntakeDraft) error {
	return s.RedisRepository.Set(ctx, draftKey(visitID), draft, s.TTL)
}

func (s *draftRedisStore) Delete(ctx context.Context, visitID string) error {
	return s.RedisRepository.Delete(ctx, draftKey(visitID))
}
