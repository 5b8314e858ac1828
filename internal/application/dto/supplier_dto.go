package dto

// CreateSupplierRequest formulario de alta de proveedor (name, phone, address?, email?).
type CreateSupplierRequest struct {
	Nombre    string `json:"name" form:"name" validate:"required,max=150"`
	Telefono  string `json:"phone" form:"phone" validate:"required,max=20"`
	Direccion string `json:"address" form:"address" validate:"omitempty,max=255"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=150"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
}
