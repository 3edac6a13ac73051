package dto

// DataResponse sobre de éxito con payload {success, data, message?}.
type DataResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ListResponse sobre de éxito para colecciones, con count.
type ListResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count"`
}

// ErrorResponse cuerpo de error HTTP con el sobre {success, message, errors?}.
// Errors solo se incluye en fallos de validación (422), con mensajes por campo.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MessageResponse sobre de éxito sin payload (borrados, logout, contacto).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
