package dto

// PaymentMethodResponse registro de `Metodo de pago`.
type PaymentMethodResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// ProductTypeResponse registro de Tipo_Producto.
type ProductTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
