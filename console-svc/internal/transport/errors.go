package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreadableReply wraps a 2xx answer whose body could not be decoded. The
// request itself was accepted.
var ErrUnreadableReply = errors.New("unreadable reply")

// HTTPError is a 4xx/5xx answer from the ordering API.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ordering API returned status %d", e.Status)
	}
	return fmt.Sprintf("ordering API returned status %d: %s", e.Status, e.Message)
}

// NetworkError means the request never got an answer from the server.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

const (
	networkMessage    = "Server is not responding. Please check your network connection."
	unexpectedMessage = "An unexpected error occurred. Please try again."
)

// UserMessage turns a transport failure into the text shown to staff.
func UserMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return statusMessage(httpErr.Status)
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return networkMessage
	}
	return unexpectedMessage
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "The request was invalid. Please check the form and try again."
	case http.StatusUnauthorized:
		return "Unauthorized. Please login again."
	case http.StatusForbidden:
		return "You do not have permission to perform this action."
	case http.StatusNotFound:
		return "Requested resource not found."
	case http.StatusTooManyRequests:
		return "You are making requests too frequently. Please wait."
	case http.StatusInternalServerError:
		return "Internal server error. Please try again later."
	case http.StatusServiceUnavailable:
		return "Service is temporarily unavailable. Please try again later."
	}
	return fmt.Sprintf("Unexpected error occurred (Status code: %d).", status)
}

// StatusCode picks the status the console answers with for a transport failure.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
