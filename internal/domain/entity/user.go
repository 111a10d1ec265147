package entity

import "time"

// Roles válidos para User. Enumeración cerrada: todo chequeo de acceso se hace
// contra estas constantes, nunca contra strings sueltos.
const (
	RoleEmpleado      = "Empleado"
	RoleAdministrador = "Administrador"
	RoleSuperUsuario  = "Super Usuario"
	RoleCocinero      = "cocinero"
)

// ValidRole indica si el rol pertenece a la enumeración.
func ValidRole(role string) bool {
	switch role {
	case RoleEmpleado, RoleAdministrador, RoleSuperUsuario, RoleCocinero:
		return true
	}
	return false
}

// StaffRoles roles con acceso al panel de caja.
func StaffRoles() []string {
	return []string{RoleEmpleado, RoleAdministrador, RoleSuperUsuario}
}

// User representa una cuenta del personal. La baja siempre es lógica
// (Active=false); las filas nunca se eliminan.
type User struct {
	ID           string // uuid
	Username     string // único
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
