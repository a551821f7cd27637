package dto

type UserSignup struct {
	Name     string `json:"name" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,numeric,len=10"`
	Password string `json:"password" validate:"required"`
	UniqueID string `json:"unique_id" validate:"omitempty,alphanum,max=64"`
}

type UserLogin struct {
	UniqueID string `json:"unique_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UniqueID string `json:"unique_id"`
	Name     string `json:"name"`
}

type PinRequest struct {
	Pin string `json:"pin" validate:"required,numeric,len=4"`
}

type AuthResponse struct {
	UniqueID string  `json:"unique_id"`
	Iat      float64 `json:"iat"`
	Expiry   float64 `json:"expiry"`
}
