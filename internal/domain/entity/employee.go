package entity

// Employee representa un registro de Empleado (admin o bodegero).
type Employee struct {
	ID           int64
	Nombre       string
	Usuario      string
	PasswordHash string
	Role         Role
}
