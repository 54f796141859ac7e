package utils

import (
	"podium-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateStaffRequest(t *testing.T) {
	request := &requests.CreateStaff{
		Name:     "  Ana Pérez ",
		Username: "  ANA.P  ",
		Email:    " ANA@PODIUM.ES ",
		Role:     " Fisio ",
		Password: "secret-Pass1",
	}

	SanitizeCreateStaffRequest(request)

	assert.Equal(t, "Ana Pérez", request.Name, "name should be trimmed")
	assert.Equal(t, "ana.p", request.Username, "username should be lowercase and trimmed")
	assert.Equal(t, "ana@podium.es", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, "fisio", request.Role, "role should be lowercase")
	assert.Equal(t, "secret-Pass1", request.Password, "password must be untouched")
}

func TestSanitizeUpdateStaffRequest(t *testing.T) {
	role := " ADMIN "
	request := &requests.UpdateStaff{Role: &role}

	SanitizeUpdateStaffRequest(request)

	assert.Equal(t, "admin", *request.Role)
	assert.Nil(t, request.Name, "absent fields stay absent")
	assert.Nil(t, request.Email)
}
