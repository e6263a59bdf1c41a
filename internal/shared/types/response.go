package types

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WelcomeResponse is returned by the root endpoint
type WelcomeResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	Version       string `json:"version"`
	RequestNumber int64  `json:"requestNumber"`
}

// InfoResponse is a snapshot of process metadata
type InfoResponse struct {
	App            string  `json:"app"`
	Version        string  `json:"version"`
	RuntimeVersion string  `json:"node_version"`
	Platform       string  `json:"platform"`
	Uptime         float64 `json:"uptime"`
}
