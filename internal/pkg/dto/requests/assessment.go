package requests

type TestResult struct {
	Result string `json:"result"`
	Pain   *int   `json:"pain"`
}

type SaveAssessment struct {
	ActiveROM      map[string]float64    `json:"active_rom"`
	Strength       map[string]float64    `json:"strength"`
	OrthoTests     map[string]TestResult `json:"ortho_tests"`
	NeuroTests     map[string]TestResult `json:"neuro_tests"`
	DynamicTests   map[string]float64    `json:"dynamic_tests"`
	Scores         map[string]float64    `json:"scores"`
	ClinicianNotes string                `json:"clinician_notes" validate:"max=20000"`
	Hypothesis     string                `json:"hypothesis" validate:"max=5000"`
}

type StepMeasurement struct {
	Group string  `json:"group" validate:"required,oneof=active_rom strength dynamic_tests"`
	Key   string  `json:"key" validate:"required,max=64"`
	Delta float64 `json:"delta" validate:"gte=-999,lte=999"`
}

type ToggleTestResult struct {
	Group  string `json:"group" validate:"required,oneof=ortho_tests neuro_tests"`
	Key    string `json:"key" validate:"required,max=64"`
	Result string `json:"result" validate:"required"`
}
