package entity

import "fmt"

// Role es el conjunto cerrado de roles; determina qué subárbol de la aplicación puede visitar una sesión.
type Role uint8

// Roles válidos. El valor cero no es un rol.
const (
	RoleAdmin Role = iota + 1
	RoleBodegero
	RoleCliente
)

// ParseRole convierte el texto persistido ("admin", "bodegero", "cliente") en Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "bodegero":
		return RoleBodegero, nil
	case "cliente":
		return RoleCliente, nil
	}
	return 0, fmt.Errorf("rol desconocido %q", s)
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleBodegero:
		return "bodegero"
	case RoleCliente:
		return "cliente"
	}
	return ""
}

// Valid informa si r pertenece al conjunto de roles.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleCliente
}

// IsStaff informa si el rol pertenece a un empleado (admin o bodegero).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleBodegero
}

// MarshalText serializa el rol como texto en JSON.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("rol inválido %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText lee el rol desde texto.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
