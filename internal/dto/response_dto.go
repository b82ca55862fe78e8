package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

// ComponentStatus reports one dependency inside the health response.
type ComponentStatus struct {
	Status string `json:"status"` // "up", "down", "disabled"
	Detail string `json:"detail,omitempty"`
}

type HealthResponse struct {
	Status     string                     `json:"status"` // "ok", "degraded"
	Components map[string]ComponentStatus `json:"components"`
}
