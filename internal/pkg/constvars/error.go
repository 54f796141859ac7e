package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"alphanum":   "must contain only alphanumeric characters",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of: %s",
	"staff_role": "must be one of: admin, fisio, aux",
	"username":   "must be 3-40 characters of letters, digits, dot, dash or underscore",
	"png_data":   "must be a PNG data URL",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
