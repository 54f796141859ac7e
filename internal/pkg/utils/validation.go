package utils

import (
	"podium-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	usernamePattern = regexp.MustCompile(constvars.RegexUsername)
	pngDataPattern  = regexp.MustCompile(constvars.RegexPNGDataURL)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("staff_role", validateStaffRole)
	validate.RegisterValidation("username", validateUsername)
	validate.RegisterValidation("png_data", validatePNGData)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidStaffRole(role string) bool {
	switch role {
	case constvars.StaffRoleAdmin, constvars.StaffRoleFisio, constvars.StaffRoleAux:
		return true
	}
	return false
}

func validateStaffRole(fl validator.FieldLevel) bool {
	return IsValidStaffRole(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func validatePNGData(fl validator.FieldLevel) bool {
	return pngDataPattern.MatchString(fl.Field().String())
}
