package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeWatcher struct {
	calls atomic.Int32
	paths []string
	err   error
}

func (f *fakeWatcher) Watch(ctx context.Context, paths ...string) error {
	f.calls.Add(1)
	f.paths = paths
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestRunner_ServesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	watcher := &fakeWatcher{}
	runner := NewRunner(Config{WatchPaths: []string{"content.yaml"}}, okHandler(), watcher, testLogger())

	ln := listen(t)
	addr := ln.Addr().String()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(ctx, ln)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = client.Get("http://" + addr + "/")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	// Cancel and wait for clean shutdown
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
	assert.Equal(t, int32(1), watcher.calls.Load())
	assert.Equal(t, []string{"content.yaml"}, watcher.paths)
}

func TestRunner_WatcherFailureStopsServer(t *testing.T) {
	watcher := &fakeWatcher{err: errors.New("no such directory")}
	runner := NewRunner(Config{WatchPaths: []string{"missing/content.yaml"}}, okHandler(), watcher, testLogger())

	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(context.Background(), listen(t))
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog watcher")
	case <-time.After(2 * time.Second):
		t.Fatal("runner kept serving after the watcher failed")
	}
}

func TestRunner_NoWatchPaths(t *testing.T) {
	watcher := &fakeWatcher{}
	runner := NewRunner(Config{}, okHandler(), watcher, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(ctx, listen(t))
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
	}
	assert.Zero(t, watcher.calls.Load())
}

func TestRunner_ShutdownCancelsStreams(t *testing.T) {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		close(started)
		<-r.Context().Done() // a never-ending stream
	})
	runner := NewRunner(Config{ShutdownTimeout: 50 * time.Millisecond}, handler, nil, testLogger())

	ln := listen(t)
	addr := ln.Addr().String()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runner.Serve(ctx, ln)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = client.Get("http://" + addr + "/stream")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	defer resp.Body.Close()
	<-started

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not cut the stream")
	}
}

func TestNewRunner_Defaults(t *testing.T) {
	// Should not panic with nil logger
	runner := NewRunner(Config{Addr: ":0"}, okHandler(), nil, nil)
	require.NotNil(t, runner.logger)
	assert.Equal(t, defaultShutdownTimeout, runner.config.ShutdownTimeout)
}

func TestRunner_ListenError(t *testing.T) {
	ln := listen(t)
	defer ln.Close()

	runner := NewRunner(Config{Addr: ln.Addr().String()}, okHandler(), nil, testLogger())
	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
