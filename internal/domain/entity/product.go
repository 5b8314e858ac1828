package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario, identificado por su código natural.
type Product struct {
	Codigo      string
	Nombre      string
	Precio      decimal.Decimal
	Existencia  int64
	TipoID      int64
	TipoNombre  string
	ProveedorID *int64
}
