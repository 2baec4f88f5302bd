// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/negroni"
)

// HTTP serves the Connect REST API.
type HTTP struct {
	cluster     connect.Cluster
	laddr       string
	logRequests bool
}

// Handler builds the complete HTTP handler: the REST API, /metrics,
// and panic recovery, plus request logging if requested.
func (h *HTTP) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	restserver.PopulateRouter(r, h.cluster)

	n := negroni.New(negroni.NewRecovery())
	if h.logRequests {
		n.Use(negroni.NewLogger())
	}
	n.UseHandler(r)
	return n
}

// Serve runs an HTTP server on the configured local address.  It
// only returns if the server fails.
func (h *HTTP) Serve() error {
	return http.ListenAndServe(h.laddr, h.Handler())
}
