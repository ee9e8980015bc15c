package dto

// LoginRequest carries the app PIN.
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
