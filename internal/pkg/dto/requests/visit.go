package requests

type CreateVisit struct {
	BodyRegion string `json:"body_region" validate:"max=120"`
}

type UpdateBodyRegion struct {
	BodyRegion string `json:"body_region" validate:"required,max=120"`
}
