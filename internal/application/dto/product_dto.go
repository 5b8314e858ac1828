package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto del inventario.
type ProductResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int64           `json:"stock"`
	TypeID     int64           `json:"typeId"`
	Type       string          `json:"type"`
	SupplierID *int64          `json:"supplierId"`
}
