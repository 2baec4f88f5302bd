// Regression tests for the REST server, driven with raw HTTP.
//
// Main tests are really by running the end-to-end path from
// restclient.  This checks status codes and bodies directly.
//
// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diffeo/go-connect/memory"
	"github.com/diffeo/go-connect/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	return serveTo(t, NewRouter(memory.New()), method, path, body)
}

func serveTo(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", restdata.JSONMediaType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) restdata.ErrorResponse {
	var errResp restdata.ErrorResponse
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &errResp))
	return errResp
}

func TestRoot(t *testing.T) {
	rec := serve(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var info restdata.ServerInfo
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &info))
	assert.Equal(t, Version, info.Version)
}

func TestConnectorLifecycle(t *testing.T) {
	router := NewRouter(memory.New())

	rec := serveTo(t, router, http.MethodGet, "/connectors", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = serveTo(t, router, http.MethodPost, "/connectors",
		`{"name":"c1","config":{"name":"c1","connector.class":"FileStreamSource"}}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var info restdata.ConnectorInfo
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &info))
	assert.Equal(t, "c1", info.Name)
	assert.Equal(t, []restdata.TaskID{{Connector: "c1", Task: 0}}, info.Tasks)

	rec = serveTo(t, router, http.MethodPost, "/connectors",
		`{"name":"c1","config":{"name":"c1"}}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, decodeError(t, rec).ErrorCode)

	rec = serveTo(t, router, http.MethodPut, "/connectors/c1/pause", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serveTo(t, router, http.MethodGet, "/connectors/c1/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var status restdata.ConnectorStatus
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &status))
	assert.Equal(t, "PAUSED", status.Connector.State)
	assert.Equal(t, memory.DefaultWorkerID, status.Connector.WorkerID)

	rec = serveTo(t, router, http.MethodPut, "/connectors/c1/resume", "{}")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serveTo(t, router, http.MethodPost, "/connectors/c1/restart", "{}")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serveTo(t, router, http.MethodPut, "/connectors/c1/config", `{"tasks.max":"2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveTo(t, router, http.MethodGet, "/connectors/c1/config", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var config map[string]interface{}
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &config))
	assert.Equal(t, map[string]interface{}{"name": "c1", "tasks.max": "2"}, config)

	rec = serveTo(t, router, http.MethodDelete, "/connectors/c1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serveTo(t, router, http.MethodGet, "/connectors/c1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decodeError(t, rec)
	assert.Equal(t, http.StatusNotFound, errResp.ErrorCode)
	assert.Equal(t, "Connector c1 not found", errResp.Message)
}

func TestConfigPutCreates(t *testing.T) {
	rec := serve(t, http.MethodPut, "/connectors/c1/config", `{"connector.class":"FileStreamSink"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestNameMismatch(t *testing.T) {
	rec := serve(t, http.MethodPut, "/connectors/c1/config", `{"name":"c2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEscapedName(t *testing.T) {
	router := NewRouter(memory.New())
	rec := serveTo(t, router, http.MethodPut, "/connectors/a%2Fb/config", `{}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serveTo(t, router, http.MethodGet, "/connectors/a%2Fb", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var info restdata.ConnectorInfo
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &info))
	assert.Equal(t, "a/b", info.Name)
}

func TestBadBody(t *testing.T) {
	rec := serve(t, http.MethodPost, "/connectors", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/connectors", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")
	rec = httptest.NewRecorder()
	NewRouter(memory.New()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, http.MethodDelete, "/connector-plugins", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPlugins(t *testing.T) {
	rec := serve(t, http.MethodGet, "/connector-plugins", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var plugins []restdata.PluginInfo
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &plugins))
	assert.Len(t, plugins, len(memory.DefaultPlugins))
}

func TestValidate(t *testing.T) {
	rec := serve(t, http.MethodPut, "/connector-plugins/FileStreamSource/config/validate",
		`{"name":"c1","connector.class":"FileStreamSource"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var infos restdata.ConfigInfos
	require.NoError(t, restdata.Decode(rec.Header().Get("Content-Type"), rec.Body, &infos))
	require.NotNil(t, infos.ErrorCount)
	assert.Equal(t, 0, *infos.ErrorCount)
	assert.Len(t, infos.Configs, 2)

	rec = serve(t, http.MethodPut, "/connector-plugins/Nope/config/validate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error writing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router := NewRouter(memory.New())
	req := httptest.NewRequest(http.MethodGet, "/connector-plugins", nil)
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
