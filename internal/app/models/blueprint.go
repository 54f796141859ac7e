package models

type RomRow struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	ReferenceMin *int   `json:"reference_min,omitempty"`
	ReferenceMax *int   `json:"reference_max,omitempty"`
}

type StrengthRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ExamTest struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Cluster string `json:"cluster,omitempty"`
}

type FunctionalTest struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

type ExamBlueprint struct {
	RomRows             []RomRow         `json:"rom_rows"`
	StrengthRows        []StrengthRow    `json:"strength_rows"`
	OrthoTests          []ExamTest       `json:"ortho_tests"`
	NeuroTests          []ExamTest       `json:"neuro_tests"`
	FunctionalTests     []FunctionalTest `json:"functional_tests"`
	RecommendedScaleIDs []string         `json:"recommended_scale_ids"`
	NotesHints          []string         `json:"notes_hints"`
}

type OutcomeScale struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}
