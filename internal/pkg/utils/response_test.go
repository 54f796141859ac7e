package utils

import (
	"errors"
	"net/http/httptest"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildSuccessResponse(rec, constvars.StatusCreated, "created", map[string]string{"id": "v1"})

	assert.Equal(t, constvars.StatusCreated, rec.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
}

func TestBuildErrorResponse(t *testing.T) {
	log := zap.NewNop()

	t.Run("custom error uses its status and client message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(log, rec, exceptions.ErrVisitNotFound(nil, "v-404"))

		assert.Equal(t, constvars.StatusNotFound, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientVisitNotFound, body["message"])
	})

	t.Run("plain error becomes internal server error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(log, rec, errors.New("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	})
}
