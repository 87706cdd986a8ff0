package preview

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a mutable Source for tests
type fakeSource struct {
	mu  sync.Mutex
	cfg widget.Config
}

func (f *fakeSource) Config() widget.Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}

func (f *fakeSource) set(cfg widget.Config) {
	f.mu.Lock()
	f.cfg = cfg
	f.mu.Unlock()
}

func newTestServer(t *testing.T) (*Server, *fakeSource) {
	t.Helper()
	src := &fakeSource{cfg: widget.Default()}
	srv, err := New(&Config{Host: "127.0.0.1", Port: 0}, src)
	require.NoError(t, err)
	return srv, src
}

func TestNew_Validation(t *testing.T) {
	_, err := New(&Config{Port: 70000}, &fakeSource{})
	assert.Error(t, err)

	_, err = New(&Config{}, nil)
	assert.Error(t, err)

	srv, err := New(nil, &fakeSource{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, srv.config.Port)
	assert.Equal(t, "", srv.Addr())
	assert.Equal(t, 0, srv.Port())
}

func TestHandleConfig(t *testing.T) {
	srv, src := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/config")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got widget.Config
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, src.Config(), got)
}

func TestHandleCode(t *testing.T) {
	srv, src := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "configured copy type",
			wantStatus: http.StatusOK,
			wantBody:   codegen.Component(src.Config()),
		},
		{
			name:       "page override",
			query:      "?type=page",
			wantStatus: http.StatusOK,
			wantBody:   codegen.Page(src.Config()),
		},
		{
			name:       "component override",
			query:      "?type=component",
			wantStatus: http.StatusOK,
			wantBody:   codegen.Component(src.Config()),
		},
		{
			name:       "invalid type",
			query:      "?type=svelte",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/code" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestHandlePage(t *testing.T) {
	srv, src := newTestServer(t)
	cfg, err := src.Config().Update(widget.FieldPreviewURL, "https://example.com")
	require.NoError(t, err)
	src.set(cfg)

	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	page := string(body)
	assert.Contains(t, page, `"previewUrl":"https://example.com"`)
	assert.Contains(t, page, `"id":"blue"`)

	resp, err = http.Get(ts.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func dialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocket_InitialSnapshotAndBroadcast(t *testing.T) {
	srv, src := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	conn := dialWS(t, ts.URL)
	defer conn.Close()

	first := readMessage(t, conn)
	assert.Equal(t, MessageTypeConfig, first.Type)
	assert.Equal(t, src.Config(), first.Config)
	assert.Equal(t, codegen.Generate(src.Config()), first.Code)

	require.Eventually(t, func() bool { return srv.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	next, err := src.Config().Update(widget.FieldSize, widget.SizeLarge)
	require.NoError(t, err)
	src.set(next)
	srv.Broadcast(next)

	second := readMessage(t, conn)
	assert.Equal(t, widget.SizeLarge, second.Config.Size)
	assert.Contains(t, second.Code, `size={"lg"}`)
}

// racingSource publishes a newer snapshot from inside its first Config
// call, like an edit landing while a browser connects.
type racingSource struct {
	fakeSource
	srv  *Server
	once sync.Once
}

func (r *racingSource) Config() widget.Config {
	cfg := r.fakeSource.Config()
	r.once.Do(func() {
		next := cfg.AddLink()
		r.set(next)
		r.srv.Broadcast(next)
	})
	return cfg
}

func TestWebSocket_EditDuringConnectIsDelivered(t *testing.T) {
	src := &racingSource{fakeSource: fakeSource{cfg: widget.Default()}}
	srv, err := New(&Config{Host: "127.0.0.1", Port: 0}, src)
	require.NoError(t, err)
	src.srv = srv

	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	conn := dialWS(t, ts.URL)
	defer conn.Close()

	first := readMessage(t, conn)

	latest := src.fakeSource.Config()
	require.Len(t, latest.SocialLinks, len(widget.Default().SocialLinks)+1)
	assert.Equal(t, latest, first.Config)

	// The older snapshot read during the upgrade must not follow it.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "unexpected second snapshot")
}

func TestWebSocket_RefusedAfterShutdown(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	conn := dialWS(t, ts.URL)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Equal(t, 0, srv.ConnectionCount())
}

func TestWebSocket_ClientDisconnectUnregisters(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	conn := dialWS(t, ts.URL)
	readMessage(t, conn)
	require.Eventually(t, func() bool { return srv.ConnectionCount() == 1 },
		time.Second, 10*time.Millisecond)

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	assert.Eventually(t, func() bool { return srv.ConnectionCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, srv.Start(ctx))

	assert.NotZero(t, srv.Port())
	assert.True(t, strings.HasPrefix(srv.URL(), "http://127.0.0.1:"))

	resp, err := http.Get(srv.URL() + "api/config")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	conn := dialWS(t, strings.TrimSuffix(srv.URL(), "/"))
	defer conn.Close()
	readMessage(t, conn)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	require.NoError(t, srv.Shutdown(shutdownCtx))
	assert.Equal(t, 0, srv.ConnectionCount())

	// The client sees the close frame sent on shutdown.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)

	// Shutdown is idempotent.
	assert.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
