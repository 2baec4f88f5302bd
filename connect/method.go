// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package connect

import "fmt"

// Method is one of the HTTP methods the Connect REST API uses.
type Method int

const (
	// GET retrieves a resource.
	GET Method = iota

	// POST creates a resource or triggers an action.
	POST

	// PUT updates a resource or triggers an action.
	PUT

	// DELETE removes a resource.
	DELETE
)

// String returns the HTTP verb for m.
func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts an HTTP verb to a Method.
func ParseMethod(verb string) (Method, error) {
	switch verb {
	case "GET":
		return GET, nil
	case "POST":
		return POST, nil
	case "PUT":
		return PUT, nil
	case "DELETE":
		return DELETE, nil
	default:
		return GET, fmt.Errorf("unsupported HTTP method %q", verb)
	}
}
