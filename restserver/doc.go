// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a connect.Cluster as a REST service
// compatible with the Kafka Connect REST API.  The restclient package
// is a matching client, and also works against a real Connect
// cluster.
//
// The complete REST API is described in the restdata package.
//
// # HTTP Considerations
//
// All request and response bodies are JSON.  Successful requests
// return 200 OK, or 201 Created when a connector is created, 202
// Accepted for pause and resume, and 204 No Content when there is no
// body.  Failures return an ErrorResponse body with the same
// error_code as the HTTP status: 400 for invalid configurations, 404
// for unknown connectors, 409 for duplicate connectors.
//
// This interface does not support HTTP caching or authentication.
package restserver
