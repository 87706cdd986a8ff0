package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/flochat/internal/discovery"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/version"
	"github.com/muurk/flochat/internal/widget"
)

const (
	// DefaultHost binds the preview server to loopback only
	DefaultHost = "127.0.0.1"

	// DefaultPort is the preview server port used when none is configured
	DefaultPort = 4780

	// shutdownTimeout bounds the shutdown triggered by a canceled Start context
	shutdownTimeout = 5 * time.Second
)

// Config holds the preview server configuration
type Config struct {
	Host      string
	Port      int    // 0 picks a free port
	Advertise bool   // Publish the server over mDNS
	Instance  string // mDNS instance name (empty = derived from hostname)
}

// Source supplies the current widget configuration
type Source interface {
	Config() widget.Config
}

// Server serves a live browser preview of the widget
type Server struct {
	config     *Config
	source     Source
	httpServer *http.Server
	listener   net.Listener
	upgrader   websocket.Upgrader
	ad         *discovery.Advertisement

	wg          sync.WaitGroup
	mu          sync.Mutex
	activeConns map[string]*client
	closed      bool // no new clients once set; guarded by mu
	serveErr    chan error
	closeOnce   sync.Once
	shutdownErr error
}

// New creates a new Server instance
func New(config *Config, source Source) (*Server, error) {
	if config == nil {
		config = &Config{Host: DefaultHost, Port: DefaultPort}
	}
	if source == nil {
		return nil, errors.New("preview source is required")
	}
	if config.Port < 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", config.Port)
	}

	s := &Server{
		config:      config,
		source:      source,
		activeConns: make(map[string]*client),
		serveErr:    make(chan error, 1),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	s.httpServer = &http.Server{
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Start binds the listener and serves in the background. The server shuts
// down when ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	logging.Info("Preview server listening",
		zap.String("addr", listener.Addr().String()),
	)

	go func() {
		err := s.httpServer.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.serveErr <- err
	}()

	if s.config.Advertise {
		ad, err := discovery.Advertise(s.config.Instance, s.Port(), map[string]string{
			"version": version.Version,
			"path":    "/",
			"ws":      "/ws",
		})
		if err != nil {
			// Preview still works on this host without mDNS.
			logging.Warn("Failed to advertise preview server", zap.Error(err))
		} else {
			s.ad = ad
			logging.Info("Advertising preview server",
				zap.String("instance", ad.Instance),
				zap.String("service", discovery.ServiceType),
			)
		}
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logging.Warn("Preview server shutdown incomplete", zap.Error(err))
		}
	}()

	return nil
}

// Run starts the server and blocks until ctx is canceled or serving fails
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	return <-s.serveErr
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.closeOnce.Do(func() {
		logging.Info("Shutting down preview server",
			zap.Int("clients", s.ConnectionCount()),
		)

		s.ad.Shutdown()

		err := s.httpServer.Shutdown(ctx)

		// Hijacked WebSocket connections are not tracked by http.Server.
		s.mu.Lock()
		s.closed = true
		for id, c := range s.activeConns {
			delete(s.activeConns, id)
			close(c.send)
		}
		s.mu.Unlock()

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			logging.Info("All preview connections closed")
		case <-ctx.Done():
			logging.Warn("Shutdown timeout, forcing close")
			if err == nil {
				err = ctx.Err()
			}
		}
		s.shutdownErr = err
	})
	return s.shutdownErr
}

// Addr returns the bound address, or "" before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound port, or 0 before Start
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	if tcp, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// URL returns the preview page URL
func (s *Server) URL() string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

// ConnectionCount returns the number of connected preview clients
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

// Broadcast pushes cfg to every connected client. Slow clients whose send
// buffer is full are disconnected.
func (s *Server) Broadcast(cfg widget.Config) {
	msg, err := encodeSnapshot(cfg)
	if err != nil {
		logging.Error("Failed to encode snapshot", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.activeConns {
		select {
		case c.send <- msg:
			c.primed = true
		default:
			logging.Warn("Dropping slow preview client", zap.String("remote_addr", id))
			delete(s.activeConns, id)
			close(c.send)
		}
	}
}
