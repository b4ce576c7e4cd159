package dtos

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"required"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse echoes the session token for non-browser clients; web
// clients rely on the cookie set alongside it.
type LoginResponse struct {
	Token string `json:"token"`
}

type SessionResponse struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
