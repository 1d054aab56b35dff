// Package server exposes level generation over HTTP and WebSocket.
// HTTP clients get one level per request; WebSocket clients hold a
// session and request any number.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/level"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/levelstore"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
)

type Server struct {
	genConfig    *config.Config
	serverConfig *config.ServerConfig
	flows        *level.FlowLoader
	store        *levelstore.Store
	connLimiter  *ConnLimiter

	httpServer *http.Server
	mu         sync.Mutex
	conns      map[*websocket.Conn]struct{}
	StartTime  time.Time
}

// NewServer creates a level service over the given configuration.
func NewServer(genConfig *config.Config, serverConfig *config.ServerConfig) *Server {
	return &Server{
		genConfig:    genConfig,
		serverConfig: serverConfig,
		flows:        level.NewFlowLoader(serverConfig.FlowDir),
		connLimiter:  NewConnLimiter(serverConfig.Connections),
		conns:        make(map[*websocket.Conn]struct{}),
		StartTime:    time.Now(),
	}
}

// SetStore attaches a level store. Without one, save requests and the
// level listing endpoints are rejected.
func (s *Server) SetStore(store *levelstore.Store) {
	s.store = store
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/flows", s.handleFlows)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/levels", s.handleLevels)
	mux.HandleFunc("/levels/", s.handleLevelByID)
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)
	return mux
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.serverConfig.Address,
		Handler: s.Handler(),
	}

	logger.Info("Level service listening", "address", s.serverConfig.Address)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown closes every WebSocket session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleWebSocketUpgrade upgrades an HTTP connection to WebSocket.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	// Get the real client IP (supports X-Forwarded-For from reverse proxies)
	clientIP := getRealIP(r)

	// Check connection limits before upgrading
	if s.connLimiter != nil && !s.connLimiter.TryAcquire(clientIP) {
		logger.Warning("WebSocket connection rejected - limit exceeded",
			"remote_addr", r.RemoteAddr,
			"client_ip", clientIP)
		http.Error(w, "Too many connections. Please try again later.", http.StatusTooManyRequests)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := s.serverConfig.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("WebSocket connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		// Release the slot since the upgrade failed
		if s.connLimiter != nil {
			s.connLimiter.Release(clientIP)
		}
		return
	}

	go s.handleConnection(wsConn, clientIP)
}

// handleConnection runs one WebSocket session: each text message is a
// generation request and gets the exported level (or an error reply)
// back.
func (s *Server) handleConnection(conn *websocket.Conn, clientIP string) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		if s.connLimiter != nil {
			s.connLimiter.Release(clientIP)
		}
		conn.Close()
		logger.Info("Client disconnected", "client_ip", clientIP)
	}()

	logger.Info("Client connected", "client_ip", clientIP)

	if max := s.serverConfig.WebSocket.MaxMessageSize; max > 0 {
		conn.SetReadLimit(max)
	}

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warning("WebSocket read failed", "client_ip", clientIP, "error", err)
			}
			return
		}

		reply, genErr := s.handleRequest(message)
		if genErr != nil {
			logger.Warning("Generation request failed", "client_ip", clientIP, "error", genErr)
			if err := writeWSError(conn, genErr); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
			return
		}
	}
}

// getRealIP extracts the real client IP from an HTTP request.
// It checks X-Forwarded-For header first (for reverse proxy setups),
// then falls back to the direct remote address.
func getRealIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs: "client, proxy1, proxy2"
	// The first one is the original client
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			clientIP := strings.TrimSpace(ips[0])
			if clientIP != "" {
				return clientIP
			}
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	return extractIP(r.RemoteAddr)
}
