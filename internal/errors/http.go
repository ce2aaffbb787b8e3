package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the JSON body written for a failed HTTP request
type Response struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// ToResponse converts any error into a response body and HTTP status.
// Errors that are not *Error are reported as internal without leaking their text.
func ToResponse(err error) (int, *Response) {
	if err == nil {
		return http.StatusOK, &Response{Code: CodeOK}
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code.HTTPStatus(), &Response{
			Code:    customErr.Code,
			Message: customErr.Message,
			Meta:    customErr.Meta,
		}
	}

	return http.StatusInternalServerError, &Response{
		Code:    CodeInternal,
		Message: "internal error",
	}
}

// WriteHTTP writes err to w as a JSON error response
func WriteHTTP(w http.ResponseWriter, err error) {
	status, body := ToResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
