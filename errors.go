package xioca

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey возвращается до любого сетевого вызова, если ключ не
// передан ни опцией, ни переменной окружения XIOCA_API_KEY.
var ErrMissingAPIKey = errors.New("api key is required: pass WithAPIKey or set XIOCA_API_KEY")

// Сентинелы для статусов, которые API использует осмысленно.
// Сопоставляются с *APIError через errors.Is.
var (
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("model or resource not found")
	ErrRateLimit        = errors.New("rate limit exceeded")
)

// ValidationError is a locally detected bad request parameter. The request
// never reaches the network.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// NetworkError is a transport-level failure: timeout, DNS, connection reset.
// The library surfaces it as-is and never retries.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError means the server understood but declined the request.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Is maps well-known statuses onto the package sentinels, so callers can
// write errors.Is(err, xioca.ErrAuthFailed) without digging into the status.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAuthFailed:
		return e.StatusCode == http.StatusUnauthorized
	case ErrPermissionDenied:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimit:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// ParseError means the server returned 2xx but the body did not match the
// expected schema. Kept distinct from APIError: "сервер ответил ерундой" и
// "сервер отказал" обрабатываются по-разному.
type ParseError struct {
	Err  error
	Body []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected response format: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
