package bridge

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cryptk/omnilogic-local/internal/logging"
	"github.com/cryptk/omnilogic-local/internal/omniapi"
)

// Config holds the bridge server's configuration.
type Config struct {
	Host         string
	Port         int
	PollInterval time.Duration // How often to poll the controller for telemetry.
}

// Server polls a controller for telemetry and fans each snapshot out
// to every WebSocket client connected to it.
type Server struct {
	config   Config
	client   *omniapi.Client
	upgrader websocket.Upgrader
	listener net.Listener
	httpSrv  *http.Server
	wg       sync.WaitGroup

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]chan []byte
}

// New creates a new Server that will poll client for telemetry.
func New(config Config, client *omniapi.Client) *Server {
	return &Server{
		config: config,
		client: client,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 8192,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// Start starts the telemetry poll loop and the WebSocket listener. It
// blocks until ctx is canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/telemetry", s.handleWebSocket)
	s.httpSrv = &http.Server{Handler: mux}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener

	logging.Info("Starting telemetry bridge server",
		zap.String("addr", addr),
		zap.Duration("poll_interval", s.config.PollInterval),
	)

	errChan := make(chan error, 1)
	go func() { errChan <- s.httpSrv.Serve(listener) }()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.pollLoop(ctx)
	}()

	select {
	case <-ctx.Done():
		return s.shutdown()
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// pollLoop periodically fetches telemetry and broadcasts it until ctx
// is done.
func (s *Server) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *Server) pollOnce(ctx context.Context) {
	pollCtx, cancel := context.WithTimeout(ctx, s.config.PollInterval)
	defer cancel()

	snap, err := s.client.GetTelemetry(pollCtx)
	if err != nil {
		logging.Warn("Telemetry poll failed", zap.Error(err))
		return
	}

	payload, err := marshalSnapshot(snap)
	if err != nil {
		logging.Error("Failed to marshal telemetry snapshot", zap.Error(err))
		return
	}

	s.broadcast(payload)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	remoteAddr := r.RemoteAddr
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed", zap.String("remote_addr", remoteAddr), zap.Error(err))
		return
	}
	logging.Info("Telemetry client connected", zap.String("remote_addr", remoteAddr))

	send := make(chan []byte, 8)
	s.clientsMu.Lock()
	s.clients[conn] = send
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		_ = conn.Close()
		logging.Info("Telemetry client disconnected", zap.String("remote_addr", remoteAddr))
	}()

	// Drain and discard anything the client sends; this is a
	// broadcast-only channel. Reading is what notices the client went
	// away (close frame, reset, etc).
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				_ = conn.Close()
				return
			}
		}
	}()

	for payload := range send {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logging.Debug("Telemetry client write failed", zap.String("remote_addr", remoteAddr), zap.Error(err))
			return
		}
	}
}

// broadcast fans payload out to every connected client's send channel,
// dropping it for a client whose channel is currently full rather than
// blocking the poll loop on a slow reader.
func (s *Server) broadcast(payload []byte) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for conn, send := range s.clients {
		select {
		case send <- payload:
		default:
			logging.Warn("Dropping telemetry broadcast for slow client", zap.String("remote_addr", conn.RemoteAddr().String()))
		}
	}
}

func (s *Server) shutdown() error {
	logging.Info("Shutting down telemetry bridge server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Error shutting down HTTP server", zap.Error(err))
	}

	s.clientsMu.Lock()
	for conn, send := range s.clients {
		close(send)
		_ = conn.Close()
	}
	s.clients = make(map[*websocket.Conn]chan []byte)
	s.clientsMu.Unlock()

	s.wg.Wait()
	return nil
}
