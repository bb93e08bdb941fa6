package gateway

// RequestError is the one failure kind the backend surface produces. No
// distinction is made between network-level, validation and server errors;
// callers get a message string suitable for display.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}
