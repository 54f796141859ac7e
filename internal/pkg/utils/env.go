package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// getEnv returns defaultValue when key is unset, blank, or does not parse
// as the default's type.
func getEnv(key string, defaultValue interface{}) interface{} {
	raw, exists := os.LookupEnv(key)
	value := strings.TrimSpace(raw)
	if !exists || value == "" {
		return defaultValue
	}

	var (
		parsed interface{}
		err    error
	)
	switch defaultValue.(type) {
	case string:
		return value
	case int:
		parsed, err = strconv.Atoi(value)
	case bool:
		parsed, err = strconv.ParseBool(value)
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	default:
		return defaultValue
	}
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return parsed
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	return getEnv(key, defaultValue).(float64)
}
