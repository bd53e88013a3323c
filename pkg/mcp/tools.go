package mcp

import (
	"context"
	"fmt"
	"reflect"

	"weather-mcp/internal/jsonschema"
	"weather-mcp/pkg/protocol"

	log "github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

// ToolRegistration pairs a tool definition with its implementation.
type ToolRegistration struct {
	Definition protocol.Tool
	// Handler is the strongly-typed function that implements the tool:
	// func([ctx context.Context,] params *T) (string, error).
	Handler interface{}
}

// registeredTool stores the processed, ready-to-dispatch tool information.
type registeredTool struct {
	Definition   protocol.Tool
	handlerValue reflect.Value
	inputType    reflect.Type
	takesContext bool
	// schema is the compiled input schema, validated against per call.
	schema *gojsonschema.Schema
}

// RegisterTools registers a slice of tools, making them available to clients.
// All registration happens before the server starts serving; the catalogue is
// immutable afterwards.
func (s *Server) RegisterTools(registrations []ToolRegistration) error {
	for _, reg := range registrations {
		if err := s.registerSingleTool(reg); err != nil {
			// Return on the first error to ensure atomicity.
			return fmt.Errorf("failed to register tool '%s': %w", reg.Definition.Name, err)
		}
	}
	return nil
}

// registerSingleTool is the internal helper that processes one registration.
func (s *Server) registerSingleTool(reg ToolRegistration) error {
	toolDef := reg.Definition
	handlerFn := reg.Handler

	if toolDef.Name == "" {
		return fmt.Errorf("tool definition must include a name")
	}

	handlerVal := reflect.ValueOf(handlerFn)
	handlerType := handlerVal.Type()
	if handlerType.Kind() != reflect.Func {
		return fmt.Errorf("handler must be a function")
	}

	// Validate handler signature and extract input type.
	var takesContext bool
	numIn := handlerType.NumIn()
	if numIn > 0 && handlerType.In(0).Implements(reflect.TypeOf((*context.Context)(nil)).Elem()) {
		takesContext = true
	}

	expectedArgCount := 1
	if takesContext {
		expectedArgCount = 2
	}
	if numIn != expectedArgCount {
		return fmt.Errorf("handler has incorrect number of arguments (expected %d, got %d)", expectedArgCount, numIn)
	}

	// The input type is the last argument.
	inputType := handlerType.In(numIn - 1)
	if inputType.Kind() != reflect.Ptr || inputType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("handler's parameter type must be a pointer to a struct, but got %s", inputType)
	}

	// Generate the input schema from the parameter type, then compile it so
	// validation per call is a lookup, not a parse.
	inputSchema, err := jsonschema.GenerateSchemaForType(inputType)
	if err != nil {
		return fmt.Errorf("could not generate schema for type %s: %w", inputType, err)
	}
	toolDef.InputSchema = inputSchema

	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(inputSchema))
	if err != nil {
		return fmt.Errorf("could not compile schema for type %s: %w", inputType, err)
	}

	s.toolLock.Lock()
	defer s.toolLock.Unlock()

	if _, exists := s.tools[toolDef.Name]; exists {
		return fmt.Errorf("tool with name '%s' already registered", toolDef.Name)
	}

	s.tools[toolDef.Name] = registeredTool{
		Definition:   toolDef,
		handlerValue: handlerVal,
		inputType:    inputType,
		takesContext: takesContext,
		schema:       compiled,
	}
	s.toolOrder = append(s.toolOrder, toolDef.Name)

	log.Infof("Registered tool: %s", toolDef.Name)
	return nil
}
