package dto

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse wraps data in a successful envelope.
func SuccessResponse(data any, message string) APIResponse {
	return APIResponse{Success: true, Data: data, Message: message}
}

// ErrorResponse builds a failed envelope carrying msg.
func ErrorResponse(msg string) APIResponse {
	return APIResponse{Success: false, Error: msg}
}

// ValidationErrorResponse carries every validation message of a rejected request.
type ValidationErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors"`
}
