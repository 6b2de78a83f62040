package dto

type CreateUserRequestDTO struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}

type SignUpRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
}

type ValidateTokenRequestDTO struct {
	Token string `json:"token"`
}

type ValidateTokenResponseDTO struct {
	IsValid bool           `json:"is_valid"`
	Payload map[string]any `json:"payload,omitempty"`
}

type UserResponseDTO struct {
	ID       string             `json:"id"`
	ClientID string             `json:"client_id"`
	Name     string             `json:"name"`
	Videos   []VideoResponseDTO `json:"videos"`
}
