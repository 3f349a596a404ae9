package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// genericRejection is shown when the server rejects a payload without saying why.
const genericRejection = "the server could not save your changes"

// ValidationError means the server rejected a save or tax profile update.
// Message is the server's text, meant to be shown to the user as-is.
type ValidationError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError covers every other failure: the request could not be sent,
// credentials were refused, the server failed, or the body was unreadable.
type TransportError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s failed", e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " with status %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	} else if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorBody reads both the nested envelope {"error": {"code", "message"}}
// and the flat form {"error": "message"}.
func errorBody(data []byte) (code, message string) {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || len(envelope.Error) == 0 {
		return "", ""
	}

	var flat string
	if err := json.Unmarshal(envelope.Error, &flat); err == nil {
		return "", flat
	}

	var nested struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &nested); err == nil {
		return nested.Code, nested.Message
	}
	return "", ""
}
