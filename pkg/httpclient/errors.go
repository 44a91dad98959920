package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/mirajehossain/ecom-customer/pkg/errors"
)

// apiErrorBody covers the error envelopes the commerce API is known to
// return: either a bare string under "error" or a structured object with
// code and message.
type apiErrorBody struct {
	Error json.RawMessage `json:"error"`
}

type apiErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseResponseError reads the body of a non-2xx HTTP response and translates
// it into an appropriate AppError. If the body matches a known error envelope
// the message is preserved; otherwise a generic error is returned with the
// status code and raw body.
//
// The caller should only invoke this when resp.StatusCode indicates an error
// (i.e., not 2xx). The response body is fully consumed and closed.
func ParseResponseError(resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return fmt.Errorf("api returned status %d (failed to read body: %w)", resp.StatusCode, err)
	}

	if code, message, ok := parseErrorEnvelope(bodyBytes); ok {
		return mapAPIError(resp.StatusCode, code, message)
	}

	// Fallback: unstructured error body.
	return mapAPIError(resp.StatusCode, "", string(bodyBytes))
}

// parseErrorEnvelope extracts a code and message from a structured error body.
func parseErrorEnvelope(body []byte) (code, message string, ok bool) {
	var envelope apiErrorBody
	if json.Unmarshal(body, &envelope) != nil || len(envelope.Error) == 0 {
		return "", "", false
	}

	// "error" may be a plain string or an object.
	var s string
	if json.Unmarshal(envelope.Error, &s) == nil {
		return "", s, true
	}

	var detail apiErrorDetail
	if json.Unmarshal(envelope.Error, &detail) == nil && detail.Message != "" {
		return detail.Code, detail.Message, true
	}

	return "", "", false
}

// mapAPIError translates an HTTP status code and error message into an
// AppError that preserves the error semantics.
func mapAPIError(status int, code, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: message,
			Status:  status,
			Err:     apperrors.ErrNotFound,
		}
	case status == http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case status == http.StatusUnauthorized:
		return apperrors.Unauthorized(message)
	case status == http.StatusForbidden:
		return apperrors.Forbidden(message)
	case status == http.StatusConflict:
		return apperrors.Conflict(message)
	case status == http.StatusUnprocessableEntity:
		return apperrors.Rejected(message)
	case status == http.StatusServiceUnavailable:
		return apperrors.Unavailable(message)
	case status >= 500:
		return fmt.Errorf("api server error (%d/%s): %s", status, code, message)
	default:
		return &apperrors.AppError{
			Code:    code,
			Message: message,
			Status:  status,
		}
	}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
