package dto

// ErrorResponseDTO is the body of every error response. Message and Error carry the same text.
type ErrorResponseDTO struct {
	Message string `json:"message" example:"keyword parameter is required"`
	Error   string `json:"error" example:"keyword parameter is required"`
}

func NewErrorResponse(msg string) ErrorResponseDTO {
	return ErrorResponseDTO{Message: msg, Error: msg}
}

// HealthResponseDTO is returned by GET /health.
type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
}
