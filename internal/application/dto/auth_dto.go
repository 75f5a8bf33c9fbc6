package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticación correcta.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
