package dto

// PanelLink acceso directo de un panel a un recurso de la API.
type PanelLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// PanelResponse panel de un rol (/admin, /bodega, /cliente). Purchases solo para clientes.
type PanelResponse struct {
	Panel     string             `json:"panel"`
	Greeting  string             `json:"greeting"`
	Links     []PanelLink        `json:"links"`
	Purchases []PurchaseResponse `json:"purchases,omitempty"`
}

// LandingResponse respuesta de /login y /no-autorizado con el motivo de la redirección.
type LandingResponse struct {
	Motivo string `json:"motivo"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
