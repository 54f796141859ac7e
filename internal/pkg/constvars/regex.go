package constvars

const (
	RegexEmail      = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexVisitID    = `^[a-zA-Z0-9_-]{1,64}$`
	RegexUsername   = `^[a-zA-Z0-9._-]{3,40}$`
	RegexPNGDataURL = `^data:image/png;base64,`
)
