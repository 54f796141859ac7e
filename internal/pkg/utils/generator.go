package utils

import (
	"podium-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateVisitID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}
