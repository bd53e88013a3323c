package mcp

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"weather-mcp/pkg/protocol"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultCallTimeout = 8 * time.Second

// Server holds the state and logic for an MCP server. The tool catalogue is
// fixed once registration finishes; sessions come and go per client.
type Server struct {
	router       *mux.Router
	info         protocol.ImplementationInfo
	capabilities protocol.ServerCapabilities
	callTimeout  time.Duration

	sessionLock sync.RWMutex
	sessions    map[string]*SessionState

	toolLock sync.RWMutex
	tools    map[string]registeredTool
	// toolOrder preserves registration order for tools/list.
	toolOrder []string
}

// SessionState holds state for a connected client. A session exists only
// after a successful initialize; its presence is what marks the client READY
// for tools/* traffic.
type SessionState struct {
	ClientCapabilities protocol.ClientCapabilities
	// initResult is replayed verbatim when the client repeats initialize.
	initResult protocol.InitializeResult
}

// NewServer creates a new MCP Server advertising the tools capability.
// callTimeout bounds each tool invocation; zero selects the default.
func NewServer(name, version string, callTimeout time.Duration) *Server {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	s := &Server{
		router: mux.NewRouter(),
		info:   protocol.ImplementationInfo{Name: name, Version: version},
		capabilities: protocol.ServerCapabilities{
			Tools: &protocol.ServerToolCapabilities{},
		},
		callTimeout: callTimeout,
		sessions:    make(map[string]*SessionState),
		tools:       make(map[string]registeredTool),
	}
	s.router.HandleFunc("/mcp", s.handleMCPRequest).Methods(http.MethodGet, http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	return s
}

// Handler exposes the server's HTTP routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	log.Infof("MCP Server '%s' version '%s' listening on %s", s.info.Name, s.info.Version, addr)
	return http.ListenAndServe(addr, s.router)
}

// handleHealth is the liveness endpoint for deployment probes.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// handleRoot serves a plain-text info page describing the server.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.toolLock.RLock()
	tools := strings.Join(s.toolOrder, ", ")
	s.toolLock.RUnlock()

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "%s %s\n\nAvailable endpoints:\n- GET /healthz - Health check\n- POST /mcp - MCP server endpoint (JSON-RPC)\n\nTools: %s\n",
		s.info.Name, s.info.Version, tools)
}

// session looks up a session by id; a missing or empty id means the client
// has not completed the handshake.
func (s *Server) session(id string) (*SessionState, bool) {
	if id == "" {
		return nil, false
	}
	s.sessionLock.RLock()
	defer s.sessionLock.RUnlock()
	state, ok := s.sessions[id]
	return state, ok
}
