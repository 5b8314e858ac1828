package dto

// ErrorResponse cuerpo de error HTTP.
// Fields enumera los campos inválidos (VALIDATION); Detail solo viaja con APP_DEBUG_ERRORS.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
	Detail  string   `json:"detail,omitempty"`
}

// SuccessResponse respuesta mínima de las operaciones de escritura.
type SuccessResponse struct {
	Success bool `json:"success"`
}
