// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework: decode the request
// body, call a handler function per HTTP method, and encode the
// result or an error.

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/diffeo/go-connect/restdata"
	"github.com/gorilla/mux"
)

// errMethodNotAllowed is used within the resourceHandler
// implementation to flag an error if a particular HTTP method is not
// allowed.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("HTTP method %v is not supported", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseStatus is returned as a value from handler functions that
// want a specific success status, such as 201 Created.
type responseStatus struct {
	// Status is the HTTP status code.
	Status int

	// Body contains the object sent in the body of the response,
	// or nil for none.
	Body interface{}
}

// request holds the parts of an HTTP request handler functions need.
type request struct {
	// Name is the unescaped {name} path variable, if any.
	Name string

	// Class is the unescaped {class} path variable, if any.
	Class string
}

func newRequest(req *http.Request) (*request, error) {
	var err error
	r := &request{}
	vars := mux.Vars(req)
	if name, present := vars["name"]; present {
		r.Name, err = url.PathUnescape(name)
	}
	if class, present := vars["class"]; present && err == nil {
		r.Class, err = url.PathUnescape(class)
	}
	if err != nil {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	return r, nil
}

type resourceHandler struct {
	// Representation is the type of the request body for PUT
	// and POST.  A new zero value of this type is decoded into
	// and passed to the handler functions.
	Representation interface{}

	// Get, if non-nil, returns a representation of the object.
	Get func(*request) (interface{}, error)

	// Put, if non-nil, updates the object or takes some action.
	Put func(*request, interface{}) (interface{}, error)

	// Post, if non-nil, creates an object or takes some action.
	Post func(*request, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes the object.
	Delete func(*request) (interface{}, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx    *request
		in     interface{}
		out    interface{}
		err    error
		status = http.StatusOK
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			writeResponse(resp, response.ErrorCode, response)
		}
	}()

	ctx, err = newRequest(req)

	// Read the body, if it's there
	if err == nil && (req.Method == "PUT" || req.Method == "POST") && h.Representation != nil {
		target := reflect.New(reflect.TypeOf(h.Representation))
		contentType := req.Header.Get("Content-Type")
		err = restdata.Decode(contentType, req.Body, target.Interface())
		if err == nil {
			in = target.Elem().Interface()
		} else if _, hasStatus := err.(restdata.ErrorStatus); !hasStatus {
			err = restdata.ErrBadRequest{Err: err}
		}
	}

	// Actually call the handler method
	if err == nil {
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case "GET", "HEAD":
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case "PUT":
			if h.Put != nil {
				out, err = h.Put(ctx, in)
			}
		case "POST":
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case "DELETE":
			if h.Delete != nil {
				out, err = h.Delete(ctx)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		errResp := restdata.ErrorResponse{}
		errResp.FromError(err)
		status = errResp.ErrorCode
		out = errResp
	} else if explicit, isStatus := out.(responseStatus); isStatus {
		status = explicit.Status
		out = explicit.Body
	} else if out == nil {
		status = http.StatusNoContent
	}
	if req.Method == "HEAD" {
		out = nil
	}
	writeResponse(resp, status, out)
}

// writeResponse sends a status and, if out is non-nil, its JSON
// encoding.  Once the status line is written there is nothing useful
// to do if encoding fails.
func writeResponse(resp http.ResponseWriter, status int, out interface{}) {
	if out != nil {
		resp.Header().Set("Content-Type", restdata.JSONMediaType)
	}
	resp.WriteHeader(status)
	if out != nil {
		_ = restdata.Encode(resp, out)
	}
}
