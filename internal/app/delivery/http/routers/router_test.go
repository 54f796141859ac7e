package routers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"podium-service/internal/app/config"
	"podium-service/internal/app/delivery/http/controllers"
	"podium-service/internal/app/delivery/http/middlewares"
	"podium-service/internal/app/services/core/auth"
	"podium-service/internal/app/services/core/blueprints"
	"podium-service/internal/app/services/core/session"
	"podium-service/internal/app/services/core/staffs"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/pkg/constvars"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "router-test-api-key"

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
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

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	accessLog := logrus.New()
	accessLog.SetOutput(io.Discard)

	internalConfig := &config.InternalConfig{
		App: config.App{
			Env:                       constvars.AppEnvDevelopment,
			EndpointPrefix:            "api",
			Version:                   "v1",
			Timezone:                  "UTC",
			MaxRequests:               1000,
			SuperadminAPIKey:          testAPIKey,
			SuperadminAPIKeyRateLimit: 1000,
			CorsAllowedOrigins:        "*",
		},
		JWT:  config.AppJWT{Secret: "router-secret", ExpTimeInHour: 1},
		Auth: config.AppAuth{LoginRatePerMinute: 100},
	}

	staffRepository := staffs.NewStaffMemoryRepository()
	staffUsecase := staffs.NewStaffUsecase(staffRepository, logger)
	_, err := staffUsecase.EnsureBootstrapAdmin(context.Background(), "ana", "clinica-2468", "Ana")
	require.NoError(t, err)

	sessionService := session.NewSessionService(&memoryRedis{data: make(map[string]string)})
	authUsecase := auth.NewAuthUsecase(staffRepository, sessionService, internalConfig.JWT.Secret, internalConfig.JWT.ExpTimeInHour, logger)
	visitUsecase := visits.NewVisitUsecase(visits.NewVisitMemoryRepository(), logger)

	router := chi.NewRouter()
	SetupRoutes(router, internalConfig, accessLog, middlewares.NewMiddlewares(logger, authUsecase, internalConfig), &Controllers{
		Visit:      controllers.NewVisitController(logger, visitUsecase),
		Intake:     controllers.NewIntakeController(logger, nil),
		Submission: controllers.NewSubmissionController(logger, nil),
		Diagnosis:  controllers.NewDiagnosisController(logger, nil),
		Blueprint:  controllers.NewBlueprintController(logger, blueprints.NewBlueprintUsecase(logger)),
		Exam:       controllers.NewExamController(logger, nil, nil),
		Auth:       controllers.NewAuthController(logger, authUsecase, internalConfig),
		Staff:      controllers.NewStaffController(logger, staffUsecase),
	})
	return router
}

func doJSON(router http.Handler, method, path string, body interface{}, decorate ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	for _, fn := range decorate {
		fn(req)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func withAPIKey(req *http.Request) { req.Header.Set(middlewares.HeaderAPIKey, testAPIKey) }

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) { req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token) }
}

func login(t *testing.T, router http.Handler, username, password string) (string, *http.Cookie) {
	t.Helper()
	rr := doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == constvars.StaffSessionCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	return body.Data.Token, cookie
}

// One router per package run, the usecase constructors are process singletons.
func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("creating a visit is public", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/visits", map[string]string{"body_region": "Hombro derecho"})
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("listing visits requires staff", func(t *testing.T) {
		rr := doJSON(router, http.MethodGet, "/api/v1/visits", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		rr = doJSON(router, http.MethodGet, "/api/v1/visits", nil, withAPIKey)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed visit id is rejected", func(t *testing.T) {
		rr := doJSON(router, http.MethodGet, "/api/v1/visits/bad.id", nil, withAPIKey)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("assessment steppers require staff and a known group", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/exams/v1/assessment/measurements/step", map[string]interface{}{"group": "active_rom", "key": "flex_L", "delta": 5})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		rr = doJSON(router, http.MethodPost, "/api/v1/exams/v1/assessment/measurements/step", map[string]interface{}{"group": "scores", "key": "SPADI", "delta": 5}, withAPIKey)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		rr = doJSON(router, http.MethodPost, "/api/v1/exams/v1/assessment/tests/toggle", map[string]interface{}{"group": "ortho_tests", "key": ""}, withAPIKey)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("login with bad password", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "ana", "password": "wrong-pass"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("cookie session reaches whoami", func(t *testing.T) {
		_, cookie := login(t, router, "ANA", "clinica-2468")

		rr := doJSON(router, http.MethodGet, "/api/v1/auth/whoami", nil, func(req *http.Request) { req.AddCookie(cookie) })
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"role":"admin"`)
	})

	t.Run("staff admin is admin only", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/admin/staff", map[string]string{
			"name": "Lucía", "username": "lucia", "role": constvars.StaffRoleFisio, "password": "clinica-1357",
		}, withAPIKey)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		token, _ := login(t, router, "lucia", "clinica-1357")
		rr = doJSON(router, http.MethodGet, "/api/v1/admin/staff", nil, withBearer(token))
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr = doJSON(router, http.MethodGet, "/api/v1/visits", nil, withBearer(token))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("blueprint resolve", func(t *testing.T) {
		rr := doJSON(router, http.MethodPost, "/api/v1/blueprints/resolve", map[string]interface{}{
			"body_region": "Rodilla izquierda",
			"ddx":         []map[string]interface{}{{"label": "Tendinopatía rotuliana", "probability": 50}},
		}, withAPIKey)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Contains(t, rr.Body.String(), `"blueprint"`)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		token, _ := login(t, router, "ana", "clinica-2468")

		rr := doJSON(router, http.MethodPost, "/api/v1/auth/logout", nil, withBearer(token))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(router, http.MethodGet, "/api/v1/auth/whoami", nil, withBearer(token))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
