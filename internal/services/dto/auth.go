package dto

// --- Auth Requests ---

type RegisterRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=8"`
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	UserType       []string `json:"user_type" validate:"required,min=1,max=2,dive,oneof=owner sitter"`
	DateOfBirth    string   `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Experience     string   `json:"experience"`
	Qualifications string   `json:"qualifications"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// --- Auth Responses ---

type SessionResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

type WhoamiResponse struct {
	Email string `json:"email"`
}
