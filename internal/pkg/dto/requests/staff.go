package requests

type CreateStaff struct {
	Name     string `json:"name" validate:"required,max=120"`
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,staff_role"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// UpdateStaff is a partial update, nil fields are left unchanged.
type UpdateStaff struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Email       *string `json:"email" validate:"omitempty,email"`
	NewUsername *string `json:"new_username" validate:"omitempty,username"`
	Role        *string `json:"role" validate:"omitempty,staff_role"`
	Active      *bool   `json:"active"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=128"`
}
