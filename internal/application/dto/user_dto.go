package dto

import "time"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token, rol y ruta de aterrizaje según rol.
type LoginResponse struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	RedirectURL string `json:"redirect_url"`
}

// SessionStatusResponse estado de la sesión actual.
type SessionStatusResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateUserRequest alta de usuario por Super Usuario.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// UpdateUserRequest modificación de usuario: rol, contraseña y/o flag activo.
type UpdateUserRequest struct {
	Role     *string `json:"role"`
	Password *string `json:"password"`
	Active   *bool   `json:"is_active"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
