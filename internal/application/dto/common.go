package dto

// ErrorResponse cuerpo de error HTTP: envelope único {"error": "..."} para toda la API.
type ErrorResponse struct {
	Error string `json:"error"`
}
