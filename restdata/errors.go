// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"
	"net/http"

	"github.com/diffeo/go-connect/connect"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// FromError populates an ErrorResponse from an error value, choosing
// the HTTP status the Connect REST API uses for the well-known
// errors.
func (e *ErrorResponse) FromError(err error) {
	e.Message = err.Error()
	switch et := err.(type) {
	case connect.ErrNoSuchConnector:
		e.ErrorCode = http.StatusNotFound
	case connect.ErrConnectorExists:
		e.ErrorCode = http.StatusConflict
	case connect.ErrNoSuchPlugin:
		e.ErrorCode = http.StatusBadRequest
	case ErrorStatus:
		e.ErrorCode = et.HTTPStatus()
	default:
		switch err {
		case connect.ErrNoConnectorName, connect.ErrNameMismatch:
			e.ErrorCode = http.StatusBadRequest
		default:
			e.ErrorCode = http.StatusInternalServerError
		}
	}
}

// FromPanic populates an error response based on a recovered panic.
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.ErrorCode = http.StatusInternalServerError
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
}
