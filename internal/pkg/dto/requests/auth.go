package requests

type StaffLogin struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=1,max=128"`
}
