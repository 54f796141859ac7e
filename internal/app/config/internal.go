package config

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	JWT       AppJWT       `mapstructure:"jwt"`
	Mailer    AppMailer    `mapstructure:"mailer"`
	Minio     AppMinio     `mapstructure:"minio"`
	RabbitMQ  AppRabbitMQ  `mapstructure:"rabbitmq"`
	MongoDB   AppMongoDB   `mapstructure:"mongodb"`
	Diagnosis AppDiagnosis `mapstructure:"diagnosis"`
	Intake    AppIntake    `mapstructure:"intake"`
	Clinic    AppClinic    `mapstructure:"clinic"`
	Auth      AppAuth      `mapstructure:"auth"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	StorageDriver              string `mapstructure:"storage_driver"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	SuperadminAPIKey           string `mapstructure:"superadmin_api_key"`
	SuperadminAPIKeyRateLimit  int    `mapstructure:"superadmin_api_key_rate_limit"`
	CorsAllowedOrigins         string `mapstructure:"cors_allowed_origins"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppMailer struct {
	EmailSender string `mapstructure:"email_sender"`
	// MaxQueue is how many messages the worker drains per tick
	MaxQueue int `mapstructure:"max_queue"`
	// ThrottleRetry is the failed count that sends a message to the DLQ
	ThrottleRetry          int `mapstructure:"throttle_retry"`
	WorkerIntervalInSecond int `mapstructure:"worker_interval_in_second"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
}

type AppRabbitMQ struct {
	Prefetch int `mapstructure:"prefetch"`
}

type AppMongoDB struct {
	PodiumDBName string `mapstructure:"podium_db_name"`
}

type AppDiagnosis struct {
	ApiKey           string  `mapstructure:"api_key"`
	BaseUrl          string  `mapstructure:"base_url"`
	Model            string  `mapstructure:"model"`
	Temperature      float64 `mapstructure:"temperature"`
	TimeoutInSeconds int     `mapstructure:"timeout_in_seconds"`
}

type AppIntake struct {
	AutosaveDebounceInMilliseconds int `mapstructure:"autosave_debounce_in_milliseconds"`
	DraftTTLInHours                int `mapstructure:"draft_ttl_in_hours"`
	IdleEvictionInMinutes          int `mapstructure:"idle_eviction_in_minutes"`
	MaxLiveFlows                   int `mapstructure:"max_live_flows"`
}

type AppClinic struct {
	Name        string `mapstructure:"name"`
	PrivacyText string `mapstructure:"privacy_text"`
}

type AppAuth struct {
	LoginRatePerMinute     int    `mapstructure:"login_rate_per_minute"`
	BootstrapAdminUsername string `mapstructure:"bootstrap_admin_username"`
	BootstrapAdminPassword string `mapstructure:"bootstrap_admin_password"`
	BootstrapAdminName     string `mapstructure:"bootstrap_admin_name"`
}
