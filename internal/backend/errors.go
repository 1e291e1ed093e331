package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed backend call.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"    // status 0: connection/DNS failure
	KindTimeout    ErrorKind = "timeout"    // client-side deadline hit
	KindAuth       ErrorKind = "auth"       // 401: session invalid, token cleared
	KindPermission ErrorKind = "permission" // 403
	KindNotFound   ErrorKind = "not_found"  // 404
	KindConflict   ErrorKind = "conflict"   // 409: duplicate-value conflicts
	KindValidation ErrorKind = "validation" // 422: per-field errors
	KindRateLimit  ErrorKind = "rate_limit" // 429
	KindServer     ErrorKind = "server"     // 5xx
	KindClient     ErrorKind = "client"     // remaining 4xx
)

// FieldError is one flattened entry from a 422 envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed failure surfaced by every client call.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + ": " + f.Message
		}
		return strings.Join(parts, "; ")
	}
	return e.Message
}

// AsError unwraps err into a *Error when possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a backend error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

// errorEnvelope matches the backend's error body: detail is either a plain
// string or a list of {loc, msg, type} validation entries.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

type validationEntry struct {
	Loc  []json.RawMessage `json:"loc"`
	Msg  string            `json:"msg"`
	Type string            `json:"type"`
}

var statusMessages = map[int]string{
	http.StatusUnauthorized:        "Session expired. Please log in again",
	http.StatusForbidden:           "You do not have permission to perform this action",
	http.StatusNotFound:            "The requested record was not found",
	http.StatusConflict:            "A record with these details already exists",
	http.StatusUnprocessableEntity: "The submitted data failed validation",
	http.StatusTooManyRequests:     "Too many requests, please retry shortly",
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusForbidden:
		return KindPermission
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status >= 500:
		return KindServer
	default:
		return KindClient
	}
}

// newStatusError builds the typed error for a non-2xx response, preferring
// the envelope's detail over the generic status message and flattening 422
// field entries to "field: message" pairs.
func newStatusError(status int, body []byte) *Error {
	e := &Error{
		Kind:   kindForStatus(status),
		Status: status,
	}
	if msg, ok := statusMessages[status]; ok {
		e.Message = msg
	} else if status >= 500 {
		e.Message = "The server encountered an error, please try again"
	} else {
		e.Message = fmt.Sprintf("Request failed with status %d", status)
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return e
	}

	var plain string
	if err := json.Unmarshal(env.Detail, &plain); err == nil {
		if plain != "" {
			e.Message = plain
		}
		return e
	}

	var entries []validationEntry
	if err := json.Unmarshal(env.Detail, &entries); err == nil {
		for _, entry := range entries {
			e.Fields = append(e.Fields, FieldError{
				Field:   fieldFromLoc(entry.Loc),
				Message: entry.Msg,
			})
		}
	}
	return e
}

// fieldFromLoc extracts the field name from a validation loc path like
// ["body", "contact_number"] or ["query", "page", 0].
func fieldFromLoc(loc []json.RawMessage) string {
	for i := len(loc) - 1; i >= 0; i-- {
		var s string
		if err := json.Unmarshal(loc[i], &s); err == nil && s != "body" && s != "query" && s != "path" {
			return s
		}
	}
	return "request"
}
