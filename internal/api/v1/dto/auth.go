package dto

// TokenResponseDTO is returned by POST /jwt.
type TokenResponseDTO struct {
	Token string `json:"token"`
}
