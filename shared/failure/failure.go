package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	// ErrNetwork marks a transport failure while reaching the collection API.
	ErrNetwork = errors.New("network error")
	// ErrStorage marks a failed operation against the local comment database.
	ErrStorage = errors.New("storage error")
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set to string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// RemoteAPIError is returned when the collection API answers with a non-2xx status.
type RemoteAPIError struct {
	Status int `json:"status"`
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("Response from api not ok: %d", e.Status)
}

// RemoteAPI returns a RemoteAPIError carrying the given HTTP status.
func RemoteAPI(status int) error {
	return &RemoteAPIError{Status: status}
}

// Network wraps a transport error so errors.Is(err, ErrNetwork) holds.
func Network(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// Storage wraps a database error so errors.Is(err, ErrStorage) holds.
func Storage(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}
