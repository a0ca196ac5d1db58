package auth

// Missing email/password is reported by the service with the legacy message
// "Email and Password are required", so these fields carry no binding tags.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsHR      bool   `json:"is_hr"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
