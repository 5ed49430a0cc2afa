package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jredh-dev/bluegreen/config"
	"github.com/jredh-dev/bluegreen/internal/handlers"
	"github.com/jredh-dev/bluegreen/internal/status"
)

func testServer() *Server {
	cfg := &config.Config{Environment: "GREEN", Version: "2.3.1", Port: 8080, Host: "0.0.0.0"}
	return New(handlers.New(status.New(cfg)))
}

func TestRouter_Health(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "GREEN", body["environment"])
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
}

func TestRouter_NotFound(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServe_StopsOnCancel(t *testing.T) {
	s := testServer()
	stopped := false
	s.OnStop(func() { stopped = true })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/status")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"version":"2.3.1"`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not stop")
	}
	assert.True(t, stopped)
}

func TestListenAndServe_BadAddr(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	called := false
	err = testServer().ListenAndServe(ln.Addr().String(), func(net.Addr) { called = true })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
	assert.False(t, called)
}

func TestListenAndServe_SIGTERM(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	// The signal lands before Serve starts, while the banner would be
	// printing; it must still end in a clean stop.
	ready := func(net.Addr) {
		assert.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))
	}

	done := make(chan error, 1)
	go func() { done <- testServer().ListenAndServe("127.0.0.1:0", ready) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not stop on SIGTERM")
	}
	assert.Contains(t, logs.String(), "SIGTERM received, shutting down")
	assert.Contains(t, logs.String(), "Server stopped")
}

func TestTimeouts_HandlerBelowWrite(t *testing.T) {
	s := testServer()
	assert.Equal(t, WriteTimeout, s.srv.WriteTimeout)
	assert.Less(t, HandlerTimeout, s.srv.WriteTimeout)
}
