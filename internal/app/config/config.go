package config

import (
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	// a missing .env is normal in containers, the environment is used as is
	_ = godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                     utils.GetEnvString("MONGODB_URI", ""),
			Port:                    utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:                    utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username:                utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password:                utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			ConnectTimeoutInSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS", 10),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:        utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:        utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:    utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:    utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VirtualHost: utils.GetEnvString("RABBITMQ_VHOST", "/"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Madrid"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			StorageDriver:              utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverMongo),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			SuperadminAPIKeyRateLimit:  utils.GetEnvInt("APP_SUPERADMIN_API_KEY_RATE_LIMIT", 50),
			CorsAllowedOrigins:         utils.GetEnvString("APP_CORS_ALLOWED_ORIGINS", "*"),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Mailer: AppMailer{
			EmailSender:            utils.GetEnvString("MAILER_EMAIL_SENDER", ""),
			MaxQueue:               utils.GetEnvInt("MAILER_WORKER_MAX_QUEUE", 20),
			ThrottleRetry:          utils.GetEnvInt("MAILER_WORKER_THROTTLE_RETRY", 3),
			WorkerIntervalInSecond: utils.GetEnvInt("MAILER_WORKER_INTERVAL_IN_SECOND", 30),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "podium"),
		},
		RabbitMQ: AppRabbitMQ{
			Prefetch: utils.GetEnvInt("RABBITMQ_PREFETCH", 20),
		},
		MongoDB: AppMongoDB{
			PodiumDBName: utils.GetEnvString("MONGODB_PODIUM_DB_NAME", "podium"),
		},
		Diagnosis: AppDiagnosis{
			ApiKey:           utils.GetEnvString("DIAGNOSIS_API_KEY", ""),
			BaseUrl:          utils.GetEnvString("DIAGNOSIS_BASE_URL", constvars.DefaultDiagnosisBaseURL),
			Model:            utils.GetEnvString("DIAGNOSIS_MODEL", constvars.DefaultDiagnosisModel),
			Temperature:      utils.GetEnvFloat("DIAGNOSIS_TEMPERATURE", constvars.DefaultDiagnosisTemperature),
			TimeoutInSeconds: utils.GetEnvInt("DIAGNOSIS_TIMEOUT_IN_SECONDS", 20),
		},
		Intake: AppIntake{
			AutosaveDebounceInMilliseconds: utils.GetEnvInt("INTAKE_AUTOSAVE_DEBOUNCE_IN_MILLISECONDS", 300),
			DraftTTLInHours:                utils.GetEnvInt("INTAKE_DRAFT_TTL_IN_HOURS", 72),
			IdleEvictionInMinutes:          utils.GetEnvInt("INTAKE_IDLE_EVICTION_IN_MINUTES", 30),
			MaxLiveFlows:                   utils.GetEnvInt("INTAKE_MAX_LIVE_FLOWS", 1000),
		},
		Clinic: AppClinic{
			Name:        utils.GetEnvString("CLINIC_NAME", "Clínica"),
			PrivacyText: utils.GetEnvString("CLINIC_PRIVACY_TEXT", constvars.DefaultPrivacyText),
		},
		Auth: AppAuth{
			LoginRatePerMinute:     utils.GetEnvInt("AUTH_LOGIN_RATE_PER_MINUTE", 10),
			BootstrapAdminUsername: utils.GetEnvString("AUTH_BOOTSTRAP_ADMIN_USERNAME", ""),
			BootstrapAdminPassword: utils.GetEnvString("AUTH_BOOTSTRAP_ADMIN_PASSWORD", ""),
			BootstrapAdminName:     utils.GetEnvString("AUTH_BOOTSTRAP_ADMIN_NAME", "Administrador"),
		},
	}
}
