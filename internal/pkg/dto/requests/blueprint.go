package requests

type DdxCandidate struct {
	Label       string  `json:"label" validate:"required,max=200"`
	Probability float64 `json:"probability" validate:"min=0,max=100"`
	Rationale   string  `json:"rationale"`
}

type ResolveBlueprint struct {
	BodyRegion string         `json:"body_region" validate:"max=120"`
	Ddx        []DdxCandidate `json:"ddx" validate:"max=10,dive"`
}
