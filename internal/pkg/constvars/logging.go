package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingOperationKey          = "operation"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingErrorCodeKey          = "error_code"
	LoggingErrorMessageKey       = "error_message"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingVisitIDKey            = "visit_id"
	LoggingBodyRegionKey         = "body_region"
	LoggingStepKey               = "step"
	LoggingSubmissionStepKey     = "submission_step"
	LoggingFieldIDKey            = "field_id"
	LoggingFlagsKey              = "flags"
	LoggingTagsKey               = "tags"
	LoggingUsernameKey           = "username"
	LoggingRoleKey               = "role"
	LoggingQueueNameKey          = "queue_name"
	LoggingMessageIDKey          = "message_id"
	LoggingFailedCountKey        = "failed_count"
	LoggingProviderKey           = "provider"
	LoggingCountKey              = "count"
)

const (
	BusinessEventIntakeSubmitted      = "intake_submitted"
	BusinessEventRedFlagDetected      = "red_flag_detected"
	BusinessEventDiagnosisFallback    = "diagnosis_fallback_used"
	BusinessEventReportDeliveryFailed = "report_delivery_failed"
	BusinessEventReportQueued         = "report_delivery_queued"
	BusinessEventStaffLogin           = "staff_login"
	BusinessEventStaffDeleted         = "staff_deleted"
)
