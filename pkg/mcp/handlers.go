package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"weather-mcp/pkg/protocol"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

func (s *Server) handleInitialize(w http.ResponseWriter, sessionID string, req *protocol.Request) {
	var initParams protocol.InitializeRequest
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &initParams); err != nil {
			writeErrorResponse(w, req.ID, protocol.CodeInvalidParams, "Invalid params for initialize", err)
			return
		}
	}

	// A repeated initialize on a known session replays the original payload.
	if state, ok := s.session(sessionID); ok {
		w.Header().Set(sessionHeader, sessionID)
		writeSuccessResponse(w, req.ID, state.initResult)
		return
	}

	log.Infof("Client '%s' version '%s' connecting with protocol version '%s'",
		initParams.ClientInfo.Name, initParams.ClientInfo.Version, initParams.ProtocolVersion)

	result := protocol.InitializeResult{
		ProtocolVersion: protocol.Version,
		ServerInfo:      s.info,
		Capabilities:    s.capabilities,
	}

	newID := fmt.Sprintf("session-%d", time.Now().UnixNano())
	s.sessionLock.Lock()
	s.sessions[newID] = &SessionState{
		ClientCapabilities: initParams.Capabilities,
		initResult:         result,
	}
	s.sessionLock.Unlock()
	log.Infof("Created new session: %s", newID)

	w.Header().Set(sessionHeader, newID)
	writeSuccessResponse(w, req.ID, result)
}

// --- Tool Method Handlers ---

func (s *Server) handleListTools(w http.ResponseWriter, req *protocol.Request) {
	s.toolLock.RLock()
	defer s.toolLock.RUnlock()
	toolList := make([]protocol.Tool, 0, len(s.toolOrder))
	for _, name := range s.toolOrder {
		toolList = append(toolList, s.tools[name].Definition)
	}
	writeSuccessResponse(w, req.ID, protocol.ListToolsResult{Tools: toolList})
}

// handleCallTool dispatches a tool invocation. Every failure past parameter
// parsing is reported as an isError tool result so a single bad invocation
// never disturbs the session or the process.
func (s *Server) handleCallTool(w http.ResponseWriter, req *protocol.Request) {
	var callParams protocol.CallToolRequest
	if err := json.Unmarshal(req.Params, &callParams); err != nil {
		writeErrorResponse(w, req.ID, protocol.CodeInvalidParams, "Invalid params for tools/call", err)
		return
	}

	log.Infof("Dispatching tool '%s': ID=%s", callParams.Name, req.ID.String())

	s.toolLock.RLock()
	tool, exists := s.tools[callParams.Name]
	s.toolLock.RUnlock()
	if !exists {
		writeSuccessResponse(w, req.ID, protocol.ErrorResult(fmt.Sprintf("Unknown tool: %s", callParams.Name)))
		return
	}

	if callParams.Arguments == nil {
		callParams.Arguments = map[string]interface{}{}
	}
	argsBytes, err := json.Marshal(callParams.Arguments)
	if err != nil {
		writeSuccessResponse(w, req.ID, protocol.ErrorResult(fmt.Sprintf("Invalid arguments for tool %s", callParams.Name)))
		return
	}

	if msg, ok := validateArguments(tool.schema, argsBytes); !ok {
		writeSuccessResponse(w, req.ID, protocol.ErrorResult(
			fmt.Sprintf("Invalid arguments for tool %s: %s", callParams.Name, msg)))
		return
	}

	inputValue := reflect.New(tool.inputType.Elem())
	if err := json.Unmarshal(argsBytes, inputValue.Interface()); err != nil {
		writeSuccessResponse(w, req.ID, protocol.ErrorResult(
			fmt.Sprintf("Invalid arguments for tool %s: %v", callParams.Name, err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.callTimeout)
	defer cancel()

	callArgs := []reflect.Value{}
	if tool.takesContext {
		callArgs = append(callArgs, reflect.ValueOf(ctx))
	}
	callArgs = append(callArgs, inputValue)

	results := tool.handlerValue.Call(callArgs)

	var resultErr error
	if errVal := results[len(results)-1]; !errVal.IsNil() {
		resultErr = errVal.Interface().(error)
	}

	if resultErr != nil {
		log.Warnf("Tool '%s' failed: %v", callParams.Name, resultErr)
		writeSuccessResponse(w, req.ID, protocol.ErrorResult(resultErr.Error()))
		return
	}

	var resultText string
	if len(results) > 1 {
		resultText = fmt.Sprintf("%v", results[0].Interface())
	} else {
		resultText = "Operation completed successfully."
	}

	writeSuccessResponse(w, req.ID, protocol.TextResult(resultText))
}

// validateArguments checks the raw argument object against the tool's input
// schema, returning a readable description of the first violations.
func validateArguments(schema *gojsonschema.Schema, argsBytes []byte) (string, bool) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(argsBytes))
	if err != nil {
		return fmt.Sprintf("schema validation error: %v", err), false
	}
	if result.Valid() {
		return "", true
	}
	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return strings.Join(errs, ", "), false
}
