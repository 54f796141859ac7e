package auth

import (
	"context"
	"errors"
	"net/http"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/staffs"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]models.Session)}
}

func (m *memorySessions) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.SessionID] = *session
	return nil
}

func (m *memorySessions) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (m *memorySessions) DeleteSession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func setup(t *testing.T) (*authUsecase, *staffs.StaffMemoryRepository, *memorySessions) {
	t.Helper()
	repo := staffs.NewStaffMemoryRepository()
	hash, err := utils.HashPassword("clinica-2468")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.StaffUser{
		ID: "1", Name: "Ana", Username: "ana", Role: constvars.StaffRoleAdmin, Active: true, PasswordHash: hash,
	}))
	require.NoError(t, repo.Create(context.Background(), &models.StaffUser{
		ID: "2", Name: "Bea", Username: "bea", Role: constvars.StaffRoleFisio, Active: false, PasswordHash: hash,
	}))

	sessions := newMemorySessions()
	return newAuthUsecase(repo, sessions, testSecret, 2, zap.NewNop()), repo, sessions
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, _, sessions := setup(t)
	ctx := context.Background()

	t.Run("valid credentials issue a session token", func(t *testing.T) {
		resp, err := uc.Login(ctx, &requests.StaffLogin{Username: "ana", Password: "clinica-2468"})
		require.NoError(t, err)
		assert.Equal(t, constvars.StaffRoleAdmin, resp.Role)
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), resp.ExpiresAt, time.Minute)

		sessionID, err := utils.ParseSessionJWT(resp.Token, testSecret)
		require.NoError(t, err)
		assert.Contains(t, sessions.sessions, sessionID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.StaffLogin{Username: "ana", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.StaffLogin{Username: "zoe", Password: "clinica-2468"})
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := uc.Login(ctx, &requests.StaffLogin{Username: "bea", Password: "clinica-2468"})
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestAuthUsecase_ResolveSession(t *testing.T) {
	uc, repo, _ := setup(t)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &requests.StaffLogin{Username: "ana", Password: "clinica-2468"})
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		session, err := uc.ResolveSession(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "ana", session.Username)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.ResolveSession(ctx, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("role change applies to live session", func(t *testing.T) {
		staff, err := repo.FindByUsername(ctx, "ana")
		require.NoError(t, err)
		staff.Role = constvars.StaffRoleFisio
		require.NoError(t, repo.Update(ctx, "ana", staff))

		session, err := uc.ResolveSession(ctx, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, constvars.StaffRoleFisio, session.Role)
	})

	t.Run("deactivated user loses session", func(t *testing.T) {
		staff, err := repo.FindByUsername(ctx, "ana")
		require.NoError(t, err)
		staff.Active = false
		require.NoError(t, repo.Update(ctx, "ana", staff))

		_, err = uc.ResolveSession(ctx, resp.Token)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

}

func TestAuthUsecase_Logout(t *testing.T) {
	uc, _, sessions := setup(t)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &requests.StaffLogin{Username: "ana", Password: "clinica-2468"})
	require.NoError(t, err)
	sessionID, err := utils.ParseSessionJWT(resp.Token, testSecret)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, sessionID))
	assert.NotContains(t, sessions.sessions, sessionID)

	_, err = uc.ResolveSession(ctx, resp.Token)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestAuthUsecase_WhoAmI(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	who, err := uc.WhoAmI(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "Ana", who.Name)

	who, err = uc.WhoAmI(ctx, constvars.SuperadminAPIKeyUsername)
	require.NoError(t, err)
	assert.Equal(t, constvars.StaffRoleAdmin, who.Role)

	_, err = uc.WhoAmI(ctx, "zoe")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
