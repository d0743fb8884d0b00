package dto

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerificationRequest toggles a prompt's verified badge. A pointer keeps false distinguishable from missing.
type VerificationRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}
