package schnapsen

// Request pairs a command with the id the client chose for it
type Request struct {
	ID      string  `json:"id"`
	Command Command `json:"command"`
}

// Response tells the client whether the request with RequestID was accepted
type Response struct {
	RequestID string `json:"requestId"`
	Error     *Error `json:"error,omitempty"`
}

// OK returns true if the request was accepted
func (r *Response) OK() bool {
	return r.Error == nil
}
