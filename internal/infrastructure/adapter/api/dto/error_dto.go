package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the /api/health probe response
type HealthResponse struct {
	OK bool `json:"ok"`
}
