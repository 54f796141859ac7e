package staffs

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"sort"
	"sync"
)

// StaffMemoryRepository backs the memory storage driver and the tests.
type StaffMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.StaffUser
}

func NewStaffMemoryRepository() *StaffMemoryRepository {
	return &StaffMemoryRepository{users: make(map[string]models.StaffUser)}
}

var _ contracts.StaffRepository = (*StaffMemoryRepository)(nil)

func (repo *StaffMemoryRepository) FindAll(ctx context.Context) ([]models.StaffUser, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	staff := make([]models.StaffUser, 0, len(repo.users))
	for _, user := range repo.users {
		staff = append(staff, user)
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].Username < staff[j].Username })
	return staff, nil
}

func (repo *StaffMemoryRepository) FindByUsername(ctx context.Context, username string) (*models.StaffUser, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (repo *StaffMemoryRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var count int64
	for _, user := range repo.users {
		if user.Role == constvars.StaffRoleAdmin && user.Active {
			count++
		}
	}
	return count, nil
}

func (repo *StaffMemoryRepository) Create(ctx context.Context, staff *models.StaffUser) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.users[staff.Username]; exists {
		return exceptions.ErrStaffUsernameExists(nil, staff.Username)
	}
	repo.users[staff.Username] = *staff
	return nil
}

func (repo *StaffMemoryRepository) Update(ctx context.Context, username string, staff *models.StaffUser) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.users[username]
	if !ok {
		return exceptions.ErrStaffNotFound(nil, username)
	}
	if staff.Username != username {
		if _, taken := repo.users[staff.Username]; taken {
			return exceptions.ErrStaffUsernameExists(nil, staff.Username)
		}
		delete(repo.users, username)
	}

	updated := *staff
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	repo.users[staff.Username] = updated
	return nil
}

func (repo *StaffMemoryRepository) Delete(ctx context.Context, username string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[username]; !ok {
		return exceptions.ErrStaffNotFound(nil, username)
	}
	delete(repo.users, username)
	return nil
}
