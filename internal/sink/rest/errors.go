package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a rejected insert as reported by PostgREST. Code is the Postgres
// SQLSTATE or PostgREST error code when the body carried one.
type Error struct {
	StatusCode int
	Table      string
	Code       string
	Message    string
	Details    string
	Hint       string
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	if e.Code != "" {
		return fmt.Sprintf("rest: insert %s: %s (%d): %s", e.Table, e.Code, e.StatusCode, msg)
	}
	return fmt.Sprintf("rest: insert %s (%d): %s", e.Table, e.StatusCode, msg)
}

// IsUnauthorized reports whether err is a 401 or 403, usually a bad service key.
func IsUnauthorized(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// IsNotFound reports whether err is a 404, which PostgREST returns for an
// unknown table.
func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// IsConflict reports whether err is a unique or foreign key violation.
func IsConflict(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// errorBody is the PostgREST error document.
type errorBody struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details"`
	Hint    *string `json:"hint"`
}

func parseErrorResponse(status int, table string, body []byte) *Error {
	e := &Error{StatusCode: status, Table: table}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		e.Code = eb.Code
		e.Message = eb.Message
		if eb.Details != nil {
			e.Details = *eb.Details
		}
		if eb.Hint != nil {
			e.Hint = *eb.Hint
		}
		return e
	}
	e.Message = http.StatusText(status)
	if len(body) > 0 {
		e.Message = string(body)
	}
	return e
}
