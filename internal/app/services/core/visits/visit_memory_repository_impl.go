package visits

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/exceptions"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// VisitMemoryRepository keeps visits for the process lifetime. Documents
// go through a BSON round trip so callers never share state with the store.
type VisitMemoryRepository struct {
	mu     sync.RWMutex
	visits map[string][]byte
}

func NewVisitMemoryRepository() contracts.VisitRepository {
	return &VisitMemoryRepository{visits: make(map[string][]byte)}
}

func (repo *VisitMemoryRepository) decode(raw []byte) (*models.Visit, error) {
	visit := new(models.Visit)
	if err := bson.Unmarshal(raw, visit); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return visit, nil
}

func (repo *VisitMemoryRepository) GetOrCreate(ctx context.Context, visitID string) (*models.Visit, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if raw, ok := repo.visits[visitID]; ok {
		return repo.decode(raw)
	}
	visit := models.NewVisit(visitID, time.Now().UTC())
	raw, err := bson.Marshal(visit)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	repo.visits[visitID] = raw
	return repo.decode(raw)
}

func (repo *VisitMemoryRepository) FindByID(ctx context.Context, visitID string) (*models.Visit, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	raw, ok := repo.visits[visitID]
	if !ok {
		return nil, nil
	}
	return repo.decode(raw)
}

func (repo *VisitMemoryRepository) Save(ctx context.Context, visit *models.Visit) error {
	visit.UpdatedAt = time.Now().UTC()
	raw, err := bson.Marshal(visit)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.visits[visit.ID] = raw
	return nil
}

func (repo *VisitMemoryRepository) List(ctx context.Context) ([]models.Visit, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	visits := make([]models.Visit, 0, len(repo.visits))
	for _, raw := range repo.visits {
		visit, err := repo.decode(raw)
		if err != nil {
			return nil, err
		}
		visits = append(visits, *visit)
	}
	sort.Slice(visits, func(i, j int) bool {
		return visits[i].CreatedAt.After(visits[j].CreatedAt)
	})
	return visits, nil
}
