package requests

// SetIntakeAnswer carries the raw value typed by the patient. The intake
// flow coerces it according to the field type.
type SetIntakeAnswer struct {
	Value interface{} `json:"value"`
}

type ToggleIntakeOption struct {
	Option string `json:"option" validate:"required,max=200"`
}

type UpdateIntakeConsent struct {
	Accepted  bool   `json:"accepted"`
	Signature string `json:"signature" validate:"omitempty,png_data"`
}
