package dto

type RegisterRequest struct {
	UserUsername string `json:"user_username" validate:"required,min=3,max=50"`
	UserEmail    string `json:"user_email" validate:"omitempty,email,max=100"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserUsername string `json:"user_username" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
