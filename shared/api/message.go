package api

const (
	MessageReported = "reported"
	MessageSuccess  = "success"
)

// MessageResponse is the body of report and delete responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
