package auth

// TokenRequest carries the credentials exchanged for a bearer token.
// The password keeps surrounding whitespace on purpose.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse returns the opaque bearer token for the client to present
// in the Authorization header.
type TokenResponse struct {
	Token string `json:"token"`
}
