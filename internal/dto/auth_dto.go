package dto

type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UsuarioInfo struct {
	ID      int    `json:"id"`
	Usuario string `json:"usuario"`
	Nombre  string `json:"nombre"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  int    `json:"status"`
}

type LoginResponse struct {
	Token   string      `json:"token"`
	Usuario UsuarioInfo `json:"usuario"`
}

type CambiarPasswordRequest struct {
	PasswordActual string `json:"password_actual" validate:"required"`
	PasswordNueva  string `json:"password_nueva" validate:"required,min=8"`
}

type CrearUsuarioRequest struct {
	Usuario  string `json:"usuario" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

type ActualizarUsuarioRequest struct {
	Nombre *string `json:"nombre"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   *string `json:"role" validate:"omitempty,oneof=admin user"`
	Status *int    `json:"status" validate:"omitempty,oneof=0 1"`
}
