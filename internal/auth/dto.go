package auth

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed JWT produced by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest contains the payload for citizen self-registration.
// Role is never accepted from the client; new accounts are always citizens.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required,max=20"`
}
