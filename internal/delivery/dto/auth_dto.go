package dto

// Request DTOs

type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
	Rol      string `json:"rol" validate:"required,oneof=Administrador Doctor Recepcionista"`
}

// Response DTOs

// SessionResponse is the logged-in user plus what the client may show them
type SessionResponse struct {
	ID      string   `json:"id"`
	Usuario string   `json:"usuario"`
	Nombre  string   `json:"nombre"`
	Rol     string   `json:"rol"`
	Inicio  string   `json:"inicio"`
	Vistas  []string `json:"vistas"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Nombre  string `json:"nombre"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
