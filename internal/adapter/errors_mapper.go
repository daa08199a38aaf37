package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// serverError is the structured error body returned by the identity service:
// a numeric code, a machine-readable label, and a human-readable message.
type serverError struct {
	Code    int    `json:"code"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

const (
	labelMissingAuth    = "missing-auth"
	labelTooManyClients = "too-many-clients"
)

// mapHTTPError maps a non-2xx response to a sentinel error. The server error
// label takes precedence over the HTTP status: registration rejections carry
// stable labels the supervisor branches on, while the status code only picks
// the generic transport sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var se serverError
	if err := json.Unmarshal(resp.Body(), &se); err == nil {
		switch se.Label {
		case labelMissingAuth:
			return fmt.Errorf("%w: %s", ErrMissingAuth, se.Message)
		case labelTooManyClients:
			return fmt.Errorf("%w: %s", ErrTooManyClients, se.Message)
		}
		if se.Message != "" {
			body = se.Message
		}
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
