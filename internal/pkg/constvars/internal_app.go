package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_STAFF_USERNAME_KEY       ContextKey = "staff_username"
	CONTEXT_STAFF_ROLE_KEY           ContextKey = "staff_role"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "PODIUM_SVC_"
	ServiceName       = "podium-service"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"

	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"
)

const (
	MongoCollectionVisits = "visits"
	MongoCollectionStaff  = "staff_users"
)

const (
	RedisKeyIntakeDraftFormat    = "intake:%s"
	RedisKeyStaffSessionFormat   = "session:staff:%s"
	RedisKeyMailerWorkerLock     = "mailer:worker:lock"
	RedisKeySubmissionLockFormat = "submission:lock:%s"
	StaffSessionCookieName       = "staff_session"
	MinioSignatureObjectFormat   = "signatures/%s.png"
	SuperadminAPIKeyUsername     = "api-key-superadmin"
	DefaultDiagnosisModel        = "gpt-4o-mini"
	DefaultDiagnosisBaseURL      = "https://api.openai.com/v1"
	DefaultDiagnosisTemperature  = 0.2
	DefaultPrivacyText           = "Autorizo a Clínica Podium al tratamiento de mis datos de salud con fines asistenciales y envío del acuse por email. He leído y acepto la Política de Privacidad (RGPD/LOPDGDD)."
)

const (
	StaffRoleAdmin = "admin"
	StaffRoleFisio = "fisio"
	StaffRoleAux   = "aux"
)
