package dto

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password"`
}

// StatusResponse reports the session state.
type StatusResponse struct {
	Authenticated bool `json:"authenticated"`
}
