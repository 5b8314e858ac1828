package entity

// Client representa un registro de la tabla Cliente. Los clientes inician sesión con rol cliente.
type Client struct {
	ID              int64
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Telefono        string
	Direccion       string // opcional
	Usuario         string // único, normalizado (textnorm.Username)
	PasswordHash    string // bcrypt
}

// FullName nombre completo para mostrar.
func (c *Client) FullName() string {
	name := c.Nombre
	for _, s := range []string{c.ApellidoPaterno, c.ApellidoMaterno} {
		if s != "" {
			name += " " + s
		}
	}
	return name
}
