package protocol

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Version is the MCP protocol revision this server speaks.
const Version = "2024-11-05"

// Method names understood by the server.
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized"
	MethodPing        = "ping"
	MethodToolsList   = "tools/list"
	MethodToolsCall   = "tools/call"
)

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// RequestID can be a string or number according to JSON-RPC 2.0 spec.
type RequestID struct {
	value interface{}
}

// NewRequestID creates a new RequestID from a string.
func NewRequestID(id string) RequestID {
	return RequestID{value: id}
}

// NewNumericRequestID creates a new RequestID from a number.
func NewNumericRequestID(id float64) RequestID {
	return RequestID{value: id}
}

// String returns the string representation of the ID.
func (id RequestID) String() string {
	if id.value == nil {
		return ""
	}
	switch v := id.value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// UnmarshalJSON implements custom JSON unmarshaling. The null check must
// come first: unmarshaling null into a string target succeeds as a no-op,
// which would turn a null id into "".
func (id *RequestID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		id.value = nil
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		id.value = str
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		id.value = num
		return nil
	}

	return fmt.Errorf("invalid request ID: must be string, number, or null")
}

// MarshalJSON implements custom JSON marshaling.
func (id RequestID) MarshalJSON() ([]byte, error) {
	if id.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(id.value)
}

// Request is a generic JSON-RPC 2.0 request object.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a generic JSON-RPC 2.0 response object.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      RequestID       `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject represents a JSON-RPC 2.0 error.
type ErrorObject struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Notification is a generic JSON-RPC 2.0 notification object.
type Notification struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// InitializeRequest represents the parameters for the "initialize" method.
type InitializeRequest struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ClientInfo      ImplementationInfo `json:"clientInfo"`
	Capabilities    ClientCapabilities `json:"capabilities"`
}

// InitializeResult represents the successful result of an "initialize" request.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	ServerInfo      ImplementationInfo `json:"serverInfo"`
	Capabilities    ServerCapabilities `json:"capabilities"`
}

// ImplementationInfo describes the client or server software.
type ImplementationInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClientCapabilities lists the features supported by the client. The server
// records but does not act on them.
type ClientCapabilities struct {
	Roots    *struct{} `json:"roots,omitempty"`
	Sampling *struct{} `json:"sampling,omitempty"`
}

// ServerCapabilities lists the features supported by the server. Tools is
// the only capability this server exposes.
type ServerCapabilities struct {
	Tools *ServerToolCapabilities `json:"tools"`
}

// ServerToolCapabilities specifies tool-related capabilities of the server.
type ServerToolCapabilities struct {
	// The tool catalogue is fixed at startup, so this stays false.
	ListChanged bool `json:"listChanged,omitempty"`
}

// Tool defines the structure for a tool that a client can call.
type Tool struct {
	Name        string          `json:"name"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	InputSchema json.RawMessage `json:"inputSchema,omitempty"`
}

// ListToolsResult is the response for a "tools/list" request.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// CallToolRequest represents the parameters for a "tools/call" request.
type CallToolRequest struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// CallToolResult is the response for a "tools/call" request. Tool failures
// are reported here with IsError set, never as a JSON-RPC error.
type CallToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock represents a piece of content in a tool's result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// TextResult wraps a rendered string as a single-block tool result.
func TextResult(text string) *CallToolResult {
	return &CallToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// ErrorResult wraps a diagnostic as a single-block error tool result.
func ErrorResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}
