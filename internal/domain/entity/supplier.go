package entity

// Supplier representa un Proveedor.
type Supplier struct {
	ID        int64
	Nombre    string
	Telefono  string
	Direccion string
	Email     string
}
