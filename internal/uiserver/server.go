package uiserver

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cellmaster/internal/config"
	"cellmaster/internal/coordinator"
	"cellmaster/pkg/logging"
)

// commandTimeout bounds how long POST /api/command waits for the
// Coordinator's actor loop to dispatch the command before responding
// 202 Accepted instead of the definitive result. The dispatch itself
// (spec §7) never blocks on site I/O, so this is generous headroom for a
// busy actor loop, not a network timeout.
const commandTimeout = 2 * time.Second

func init() {
	// SUPPLEMENTED FEATURES #1: the original's webservice_setup_app works
	// around a Windows registry quirk where .js sometimes resolves to
	// text/plain via mimetypes.guess_type, breaking module script loading
	// in browsers. Go's mime package has the same registry-dependent
	// fallback on Windows; registering the extension explicitly once at
	// import time is the idiomatic equivalent of that defensive fix.
	_ = mime.AddExtensionType(".js", "application/javascript")
}

// Submitter is the subset of *coordinator.Coordinator the HTTP layer
// depends on, kept narrow so tests can fake it instead of standing up a
// real Coordinator actor loop.
type Submitter interface {
	Submit(cmd coordinator.OperatorCommand)
	State() coordinator.State
	NotifyUIConnected()
	SetLogfilePath(path string)
}

// Server is the UI Background Task's push half plus the HTTP/websocket
// command surface (spec §4.7, §6). It implements coordinator.Publisher
// directly so it can be handed to coordinator.New as-is.
type Server struct {
	engine   *gin.Engine
	http     *http.Server
	hub      *hub
	coord    Submitter
	upgrader websocket.Upgrader
}

// New constructs a Server bound to coord. coord may be nil at
// construction time and supplied later via BindCoordinator: the
// Coordinator itself needs a Publisher (this Server) before it exists, so
// cmd/serve.go constructs the Server first and closes the cycle with
// BindCoordinator once the Coordinator is built. If reg is non-nil,
// /metrics serves its collectors (SPEC_FULL.md §4.8); pass nil to omit
// the endpoint entirely (e.g. in tests that don't care about metrics).
func New(cfg config.CellConfig, coord Submitter, reg prometheus.Gatherer) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine: gin.New(),
		hub:    newHub(),
		coord:  coord,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Operator UIs may be served from a different origin than the
			// Master's own host:port (reverse-proxied dashboards); the
			// transport's origin policy is out of scope per spec §1, so
			// this mirrors the original aiohttp server's permissive CORS.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.engine.Use(gin.Recovery(), requestLogger)

	s.engine.GET("/api/status", s.handleGetStatus)
	s.engine.POST("/api/command", s.handlePostCommand)
	s.engine.GET("/ws", s.handleWebsocket)
	if reg != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	if cfg.WebUIStaticPath != "" {
		s.engine.Static("/", cfg.WebUIStaticPath)
	}

	addr := fmt.Sprintf("%s:%d", cfg.WebUIHost, cfg.WebUIPort)
	s.http = &http.Server{Addr: addr, Handler: s.engine}
	return s
}

func requestLogger(c *gin.Context) {
	c.Next()
	logging.Debug("uiserver", "%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
}

// BindCoordinator attaches the Submitter the HTTP handlers dispatch
// commands to and query state from. Must be called before Run; handlers
// registered by New read s.coord lazily per-request, so calling this
// after New but before traffic flows is safe.
func (s *Server) BindCoordinator(coord Submitter) { s.coord = coord }

// Run starts the HTTP listener and blocks until it stops. Returns nil on
// a clean Shutdown, any other listen error otherwise.
func (s *Server) Run() error {
	logging.Info("uiserver", "listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP listener, closing every open
// websocket connection.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)
	// http.Server.Shutdown does not track hijacked (websocket) connections.
	s.hub.mu.Lock()
	open := make([]*conn, 0, len(s.hub.conns))
	for c := range s.hub.conns {
		open = append(open, c)
	}
	s.hub.mu.Unlock()
	for _, c := range open {
		s.hub.remove(c)
	}
	return err
}

func (s *Server) handleGetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": string(s.coord.State())})
}

func (s *Server) handleWebsocket(c *gin.Context) {
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("uiserver", "websocket upgrade failed: %v", err)
		return
	}
	conn := s.hub.add(ws)
	defer s.hub.remove(conn)

	// SUPPLEMENTED FEATURES #5: a fresh connection gets an immediate
	// status + settings snapshot rather than waiting for the next change.
	s.coord.NotifyUIConnected()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}
