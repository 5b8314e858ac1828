package entity

// Session es el registro que el almacén de sesiones entrega para un token válido.
// Se crea en el login y no se modifica durante una petición.
type Session struct {
	ID   int64  `json:"id"` // ID_Cliente o ID_Empleado según el rol
	Role Role   `json:"role"`
	Name string `json:"name"`
}
