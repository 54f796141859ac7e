package responses

import "podium-service/internal/app/models"

type ResolvedBlueprint struct {
	Regions   []string              `json:"regions"`
	Tags      []string              `json:"tags"`
	Blueprint models.ExamBlueprint  `json:"blueprint"`
	Scales    []models.OutcomeScale `json:"scales"`
}

type Asymmetry struct {
	Percent int    `json:"percent"`
	Greater string `json:"greater"`
}

type ExamView struct {
	Visit             VisitSummary          `json:"visit"`
	Ddx               []models.DdxCandidate `json:"ddx"`
	Blueprint         models.ExamBlueprint  `json:"blueprint"`
	Scales            []models.OutcomeScale `json:"scales"`
	TestResultOptions []string              `json:"test_result_options"`
	Assessment        *models.Assessment    `json:"assessment,omitempty"`
	Asymmetries       map[string]Asymmetry  `json:"asymmetries"`
}

type SavedAssessment struct {
	VisitID     string               `json:"visit_id"`
	Assessment  models.Assessment    `json:"assessment"`
	Asymmetries map[string]Asymmetry `json:"asymmetries"`
}
