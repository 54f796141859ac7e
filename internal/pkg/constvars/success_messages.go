package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
)

const (
	CreateVisitSuccessMessage        = "visit created successfully"
	GetVisitSuccessMessage           = "get visit successfully"
	ListVisitsSuccessMessage         = "list visits successfully"
	UpdateBodyRegionSuccessMessage   = "body region updated successfully"
	GetIntakeSuccessMessage          = "get intake successfully"
	UpdateIntakeAnswerSuccessMessage = "answer saved successfully"
	NavigateIntakeSuccessMessage     = "step changed successfully"
	UpdateIntakeConsentMessage       = "consent saved successfully"
	SubmitIntakeSuccessMessage       = "intake submitted successfully"
	GetSubmissionSuccessMessage      = "get submission status successfully"
	RetrySubmissionStepMessage       = "submission step retried successfully"
	RequestDiagnosisSuccessMessage   = "diagnosis requested successfully"
	ResolveBlueprintSuccessMessage   = "blueprint resolved successfully"
	GetExamSuccessMessage            = "get exam successfully"
	SaveAssessmentSuccessMessage     = "assessment saved successfully"
	StepMeasurementSuccessMessage    = "measurement updated successfully"
	ToggleTestResultSuccessMessage   = "test result updated successfully"
	GenerateReportSuccessMessage     = "report generated successfully"
	GetReportSuccessMessage          = "get report successfully"
	LoginSuccessMessage              = "successfully login"
	LogoutSuccessMessage             = "successfully logout"
	WhoAmISuccessMessage             = "get current staff successfully"
	ListStaffSuccessMessage          = "list staff successfully"
	CreateStaffSuccessMessage        = "staff created successfully"
	UpdateStaffSuccessMessage        = "staff updated successfully"
	DeleteStaffSuccessMessage        = "staff deleted successfully"
)
