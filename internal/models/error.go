package models

// Messages returned by the access-control layer
const (
	MsgUnauthorized = "unauthorized access"
	MsgForbidden    = "forbidden access"
)

// MessageResponse is the body of every non-success response: {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessage wraps msg in a MessageResponse
func NewMessage(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ResultResponse is the {success, message} envelope used by the event endpoints
type ResultResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Unauthorized is the 401 body emitted by the authentication gate
func Unauthorized() MessageResponse {
	return NewMessage(MsgUnauthorized)
}

// Forbidden is the 403 body emitted by the authorization gate
func Forbidden() MessageResponse {
	return NewMessage(MsgForbidden)
}
