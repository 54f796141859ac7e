package utils

import (
	"podium-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.StaffLogin) {
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
}

func SanitizeCreateStaffRequest(input *requests.CreateStaff) {
	input.Name = strings.TrimSpace(input.Name)
	input.Username = strings.ToLower(strings.TrimSpace(input.Username))
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeUpdateStaffRequest(input *requests.UpdateStaff) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &email
	}
	if input.NewUsername != nil {
		username := strings.ToLower(strings.TrimSpace(*input.NewUsername))
		input.NewUsername = &username
	}
	if input.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*input.Role))
		input.Role = &role
	}
}
