package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidAPIKey                 = "invalid api key"
	ErrClientVisitNotFound                 = "visit not found"
	ErrClientIntakeEmailMissing            = "El email es obligatorio"
	ErrClientIntakeConsentMissing          = "Debes aceptar y firmar el consentimiento"
	ErrClientIntakeFieldUnknown            = "the question does not exist in this questionnaire"
	ErrClientIntakeAlreadySubmitted        = "this intake was already submitted"
	ErrClientIntakeAnswerInvalid           = "the answer is not valid for this question"
	ErrClientSubmissionStepUnknown         = "unknown submission step"
	ErrClientSubmissionStepBlocked         = "previous submission steps must succeed first"
	ErrClientSubmissionInProgress          = "this submission is already being processed"
	ErrClientConsentIncomplete             = "visit, email and signature are required"
	ErrClientReportNotFound                = "report not generated yet"
	ErrClientAssessmentInvalid             = "the assessment contains invalid values"
	ErrClientDiagnosisUnavailable          = "the diagnosis assistant is not available right now"
	ErrClientStaffNotFound                 = "staff user not found"
	ErrClientStaffUsernameExists           = "username already used"
	ErrClientStaffCannotDeleteSelf         = "you cannot delete your own account"
	ErrClientStaffLastAdmin                = "at least one active administrator must remain"
	ErrClientStaffInactive                 = "this account is deactivated"
	ErrClientTooManyRequests               = "too many attempts, try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevValidationFailed          = "validation failed"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevURLParamValidationFailed  = "url param %s validation failed"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevInvalidAPIKey             = "invalid superadmin api key"
	ErrDevTooManyRequests           = "rate limit exceeded for %s"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevVisitNotFound             = "visit %s not found"
	ErrDevIntakeEmailMissing        = "intake email answer is empty"
	ErrDevIntakeConsentMissing      = "intake consent not accepted or signature empty"
	ErrDevIntakeFieldUnknown        = "field %s is not part of the questionnaire"
	ErrDevIntakeAlreadySubmitted    = "intake flow for visit %s is already submitting or submitted"
	ErrDevIntakeAnswerInvalid       = "answer for field %s rejected by coercion"
	ErrDevSubmissionStepUnknown     = "submission step %s is unknown"
	ErrDevSubmissionStepBlocked     = "submission step %s has unfinished predecessors"
	ErrDevSubmissionInProgress      = "submission lock for visit %s is held"
	ErrDevConsentIncomplete         = "consent request missing visit id, email or signature"
	ErrDevReportNotFound            = "report for visit %s not found"
	ErrDevAssessmentInvalid         = "assessment field %s rejected"
	ErrDevSignatureDecode           = "failed to decode signature data URL"
	ErrDevDiagnosisProvider         = "diagnosis provider %s failed"
	ErrDevDiagnosisParse            = "failed to parse diagnosis provider response"
	ErrDevStaffNotFound             = "staff user %s not found"
	ErrDevStaffUsernameExists       = "staff username %s already exists"
	ErrDevStaffCannotDeleteSelf     = "staff user %s tried to delete own account"
	ErrDevStaffLastAdmin            = "operation would leave no active administrator"
	ErrDevStaffInactive             = "staff user %s is inactive"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevMongoDBInsertDocument     = "failed to insert document into mongodb"
	ErrDevMongoDBFindDocument       = "failed to find document in mongodb"
	ErrDevMongoDBUpdateDocument     = "failed to update document in mongodb"
	ErrDevMongoDBDeleteDocument     = "failed to delete document in mongodb"
	ErrDevMongoDBCountDocument      = "failed to count documents in mongodb"
	ErrDevRedisSetData              = "failed to SET data into redis"
	ErrDevRedisGetData              = "failed to GET data from redis, key %s"
	ErrDevRedisDeleteData           = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue       = "failed to INCR data in redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage    = "failed to publish message into rabbitmq queue %s"
	ErrDevMinioFailedToCreateObject = "failed to create object into minio storage with bucket name '%s'"
	ErrDevSMTPSendEmail             = "failed to send email via SMTP client hostname %s"
)
