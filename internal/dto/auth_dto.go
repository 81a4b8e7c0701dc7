package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	FullName string  `json:"full_name" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=admin manager staff"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Email     *string `json:"email"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
}
