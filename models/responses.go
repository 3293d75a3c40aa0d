package models

// HealthResponse is the body of GET /health. LoggedIn reflects the
// authentication state exactly at call time.
type HealthResponse struct {
	Status   string `json:"status"`
	LoggedIn bool   `json:"logged_in"`
}

// StatusResponse is the common success envelope for auth and update
// endpoints: {"status": "...", "message": "..."}.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the error envelope used on every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
