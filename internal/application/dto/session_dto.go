package dto

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// SessionResponse respuesta de GET /api/session. Session es null sin sesión válida.
type SessionResponse struct {
	Session *entity.Session `json:"session"`
}

// LoginRequest credenciales de empleado o cliente.
type LoginRequest struct {
	Usuario    string `json:"usuario" form:"usuario" validate:"required,max=60"`
	Contrasena string `json:"contrasena" form:"contrasena" validate:"required,max=72"`
}

// LoginResponse sesión creada y su token (también enviado como cookie).
type LoginResponse struct {
	Session entity.Session `json:"session"`
	Token   string         `json:"token"`
}
