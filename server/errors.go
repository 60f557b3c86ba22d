package server

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse is the JSON body of every failed request.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string   `json:"status"`
	ErrorText  string   `json:"error,omitempty"`
	Validation []string `json:"validation,omitempty"`
}

// Render sets the response status.
func (e *ErrResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrInvalidRequest is a 400 for malformed input.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

// ErrValidation is a 400 carrying one translated message per failed field.
func ErrValidation(err error, msgs []string) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		Validation:     msgs,
	}
}

// ErrUnavailable is a 503 for a map that cannot answer queries.
func ErrUnavailable(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusServiceUnavailable,
		StatusText:     "Map unavailable.",
		ErrorText:      err.Error(),
	}
}

// ErrInternal is a 500.
func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}
