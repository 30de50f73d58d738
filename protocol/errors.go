// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

import "fmt"

// ErrorCode is a JSON-RPC error code.
type ErrorCode int

const (
	// --- Standard JSON-RPC Error Codes ---
	ErrorCodeParseError     ErrorCode = -32700
	ErrorCodeInvalidRequest ErrorCode = -32600
	ErrorCodeMethodNotFound ErrorCode = -32601
	ErrorCodeInvalidParams  ErrorCode = -32602
	ErrorCodeInternalError  ErrorCode = -32603
	// -32000 to -32099 are reserved for implementation-defined server errors.

	// --- MCP / Implementation-Defined Error Codes ---
	ErrorCodeMCPUnsupportedProtocolVersion ErrorCode = -32001
	ErrorCodeMCPSessionNotFound            ErrorCode = -32002 // Unknown or expired session id
	ErrorCodeMCPToolNotFound               ErrorCode = -32010
	ErrorCodeMCPInvalidArgument            ErrorCode = -32011 // Tool arguments failed validation
	ErrorCodeMCPResourceNotFound           ErrorCode = -32040
)

// MCPError wraps ErrorPayload to implement the error interface.
// Handlers can return this type to provide specific JSON-RPC error details.
type MCPError struct {
	ErrorPayload
}

// Error implements the error interface for MCPError.
func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP Error: Code=%d, Message=%s", e.Code, e.Message)
}

// NewInvalidParamsError creates a new MCPError for invalid params.
func NewInvalidParamsError(message string) *MCPError {
	return &MCPError{
		ErrorPayload: ErrorPayload{
			Code:    ErrorCodeInvalidParams,
			Message: message,
		},
	}
}

// NewMethodNotFoundError creates a new MCPError for an unimplemented method.
func NewMethodNotFoundError(methodName string) *MCPError {
	return &MCPError{
		ErrorPayload: ErrorPayload{
			Code:    ErrorCodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", methodName),
		},
	}
}
