package dto

// Envelope is the uniform response body: {status, data, message}.
// Error responses carry a null data field.
type Envelope struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// OK wraps a success payload.
func OK(status int, data interface{}, message string) Envelope {
	return Envelope{Status: status, Data: data, Message: message}
}

// Fail wraps an error message with no data.
func Fail(status int, message string) Envelope {
	return Envelope{Status: status, Message: message}
}
