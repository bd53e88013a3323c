package mcp

import (
	"encoding/json"
	"io"
	"net/http"

	"weather-mcp/pkg/protocol"

	log "github.com/sirupsen/logrus"
)

// sessionHeader carries the session id negotiated during initialize.
const sessionHeader = "Mcp-Session-Id"

func (s *Server) handleMCPRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		// Streaming (SSE) is handled by the outer transport, not here.
		w.WriteHeader(http.StatusOK)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var rawMessage map[string]json.RawMessage
	if err := json.Unmarshal(body, &rawMessage); err != nil {
		writeErrorResponse(w, protocol.RequestID{}, protocol.CodeParseError, "Parse error: Invalid JSON", err)
		return
	}

	sessionID := r.Header.Get(sessionHeader)

	if _, ok := rawMessage["id"]; ok {
		var req protocol.Request
		if err := json.Unmarshal(body, &req); err != nil {
			writeErrorResponse(w, protocol.RequestID{}, protocol.CodeParseError, "Parse error: Invalid Request structure", err)
			return
		}
		s.handleRequest(w, sessionID, &req)
	} else {
		var notif protocol.Notification
		if err := json.Unmarshal(body, &notif); err != nil {
			log.Warnf("Error parsing notification: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.handleNotification(w, &notif)
	}
}

func (s *Server) handleRequest(w http.ResponseWriter, sessionID string, req *protocol.Request) {
	log.Infof("Received request: Method=%s, ID=%s", req.Method, req.ID.String())

	switch req.Method {
	case protocol.MethodInitialize:
		s.handleInitialize(w, sessionID, req)
	case protocol.MethodPing:
		writeSuccessResponse(w, req.ID, struct{}{})
	case protocol.MethodToolsList:
		if !s.requireSession(w, sessionID, req) {
			return
		}
		s.handleListTools(w, req)
	case protocol.MethodToolsCall:
		if !s.requireSession(w, sessionID, req) {
			return
		}
		s.handleCallTool(w, req)
	default:
		log.Infof("Unknown method: %s", req.Method)
		writeErrorResponse(w, req.ID, protocol.CodeMethodNotFound, "Method not found", nil)
	}
}

// requireSession enforces the handshake ordering: tools/* traffic is only
// valid on a session that completed initialize. The error leaves the
// connection usable; a later initialize makes it READY.
func (s *Server) requireSession(w http.ResponseWriter, sessionID string, req *protocol.Request) bool {
	if _, ok := s.session(sessionID); ok {
		return true
	}
	log.Warnf("Rejected %s before initialize (session %q)", req.Method, sessionID)
	writeErrorResponse(w, req.ID, protocol.CodeInvalidRequest,
		"Session not initialized: call initialize before tools/* methods", nil)
	return false
}

func (s *Server) handleNotification(w http.ResponseWriter, n *protocol.Notification) {
	switch n.Method {
	case protocol.MethodInitialized:
		log.Infof("Client confirmed initialization.")
		w.WriteHeader(http.StatusAccepted)
	default:
		log.Infof("Received unhandled notification: %s", n.Method)
		w.WriteHeader(http.StatusAccepted)
	}
}

func writeSuccessResponse(w http.ResponseWriter, id protocol.RequestID, result interface{}) {
	resultBytes, err := json.Marshal(result)
	if err != nil {
		writeErrorResponse(w, id, protocol.CodeInternalError, "Internal server error: failed to marshal result", err)
		return
	}
	resp := protocol.Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  resultBytes,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("Error writing success response: %v", err)
	}
}

func writeErrorResponse(w http.ResponseWriter, id protocol.RequestID, code int, message string, data error) {
	var dataStr string
	if data != nil {
		dataStr = data.Error()
	}
	errorObj := &protocol.ErrorObject{Code: code, Message: message}
	if dataStr != "" {
		errorObj.Data = dataStr
	}
	resp := protocol.Response{JSONRPC: "2.0", ID: id, Error: errorObj}

	w.Header().Set("Content-Type", "application/json")
	switch code {
	case protocol.CodeParseError, protocol.CodeInvalidRequest, protocol.CodeInvalidParams:
		w.WriteHeader(http.StatusBadRequest)
	case protocol.CodeMethodNotFound:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("Error writing error response: %v", err)
	}
}
