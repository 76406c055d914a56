package dto

// LoginRequest entrada para login del operador.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
	Operator  string `json:"operator"`
}
