package entity

// PaymentMethod registro de la tabla `Metodo de pago`.
type PaymentMethod struct {
	ID   int64
	Tipo string
}

// ProductType registro de Tipo_Producto.
type ProductType struct {
	ID     int64
	Nombre string
}
