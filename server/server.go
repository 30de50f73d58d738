// Package server provides the MCP server implementation: JSON-RPC decoding,
// request routing, and the tool-call pipeline, independent of transport.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/voyagehq/travelmcp/catalog"
	"github.com/voyagehq/travelmcp/logx"
	"github.com/voyagehq/travelmcp/protocol"
	"github.com/voyagehq/travelmcp/travel"
	"github.com/voyagehq/travelmcp/types"
)

const serverVersion = "1.0.0"

// Server holds the core MCP server logic. The tool and widget catalogs are
// read-only after startup; the session registry is the only shared mutable
// state and is safe for concurrent use.
type Server struct {
	serverName string
	logger     types.Logger

	catalog *catalog.Catalog
	search  *travel.Service

	// mockMode is true when no upstream credential is configured; tool-call
	// summaries then carry a disclaimer.
	mockMode bool

	sessions sync.Map
}

// Option configures a Server.
type Option func(*Server)

// WithLogger provides an option to set a custom logger.
func WithLogger(logger types.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMockModeDisclaimer marks the server as running without an upstream
// credential, so tool responses disclose that results are synthetic.
func WithMockModeDisclaimer(mockMode bool) Option {
	return func(s *Server) {
		s.mockMode = mockMode
	}
}

// NewServer creates a new core server instance bound to a catalog and a
// search service.
func NewServer(serverName string, cat *catalog.Catalog, search *travel.Service, opts ...Option) *Server {
	srv := &Server{
		serverName: serverName,
		logger:     logx.NewDefaultLogger(),
		catalog:    cat,
		search:     search,
	}
	for _, opt := range opts {
		opt(srv)
	}
	srv.logger.Info("MCP core server %q created.", serverName)
	return srv
}

// --- Session Management ---

// RegisterSession adds a client session to the registry.
func (s *Server) RegisterSession(session types.ClientSession) error {
	if session == nil {
		return fmt.Errorf("cannot register nil session")
	}
	sessionID := session.SessionID()
	if _, loaded := s.sessions.LoadOrStore(sessionID, session); loaded {
		return fmt.Errorf("session with ID '%s' already registered", sessionID)
	}
	s.logger.Info("Registered session: %s", sessionID)
	return nil
}

// UnregisterSession removes a session from the registry. Unregistering an
// unknown or already-removed session is a no-op; close races with client
// disconnect are expected.
func (s *Server) UnregisterSession(sessionID string) {
	if _, loaded := s.sessions.LoadAndDelete(sessionID); loaded {
		s.logger.Info("Unregistered session: %s", sessionID)
	}
}

// --- Message Handling (Called by Transport Layer) ---

// HandleMessage processes an incoming raw JSON-RPC message for a session and
// returns the responses to deliver, if any. Notifications produce no response.
func (s *Server) HandleMessage(ctx context.Context, sessionID string, rawMessage json.RawMessage) []*protocol.JSONRPCResponse {
	s.logger.Debug("HandleMessage for session %s: %s", sessionID, string(rawMessage))
	sessionI, ok := s.sessions.Load(sessionID)
	if !ok {
		s.logger.Error("Received message for unknown session ID: %s", sessionID)
		return nil
	}
	session := sessionI.(types.ClientSession)

	trimmed := bytes.TrimSpace(rawMessage)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return []*protocol.JSONRPCResponse{
			protocol.NewErrorResponse(nil, protocol.ErrorCodeInvalidRequest, "Batch requests are not supported", nil),
		}
	}

	if response := s.handleSingleMessage(ctx, session, rawMessage); response != nil {
		return []*protocol.JSONRPCResponse{response}
	}
	return nil
}

// handleSingleMessage processes a single JSON-RPC request or notification object.
func (s *Server) handleSingleMessage(ctx context.Context, session types.ClientSession, rawMessage json.RawMessage) *protocol.JSONRPCResponse {
	sessionID := session.SessionID()

	var baseMessage struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      interface{}     `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(rawMessage, &baseMessage); err != nil {
		s.logger.Error("Session %s: Failed to parse message: %v. Raw: %s", sessionID, err, string(rawMessage))
		return protocol.NewErrorResponse(nil, protocol.ErrorCodeParseError, fmt.Sprintf("Failed to parse JSON: %v", err), nil)
	}
	if baseMessage.JSONRPC != "2.0" {
		s.logger.Warn("Session %s: Invalid jsonrpc version: %s", sessionID, baseMessage.JSONRPC)
		return protocol.NewErrorResponse(baseMessage.ID, protocol.ErrorCodeInvalidRequest, "Invalid jsonrpc version", nil)
	}

	// Handshake phase: only 'initialize' and 'initialized' are accepted until
	// the session is marked initialized.
	if !session.Initialized() {
		switch {
		case baseMessage.Method == protocol.MethodInitialize && baseMessage.ID != nil:
			return s.handleInitialize(session, baseMessage.ID, baseMessage.Params)
		case baseMessage.Method == protocol.MethodInitialized && baseMessage.ID == nil:
			session.Initialize()
			s.logger.Info("Session %s initialized.", sessionID)
			return nil
		default:
			s.logger.Error("Session %s: invalid message (method: %s, id: %v) during initialization", sessionID, baseMessage.Method, baseMessage.ID)
			return protocol.NewErrorResponse(baseMessage.ID, protocol.ErrorCodeInvalidRequest,
				"Expected 'initialize' request or 'initialized' notification during handshake", nil)
		}
	}

	if baseMessage.ID != nil {
		return s.handleRequest(ctx, session, baseMessage.ID, baseMessage.Method, baseMessage.Params)
	}
	if baseMessage.Method != "" {
		// No notifications beyond 'initialized' are handled; log and move on.
		s.logger.Info("Ignoring notification %q from session %s", baseMessage.Method, sessionID)
		return nil
	}
	s.logger.Warn("Session %s: message with no ID or Method: %s", sessionID, string(rawMessage))
	return protocol.NewErrorResponse(nil, protocol.ErrorCodeInvalidRequest,
		"Invalid message: must be request (with id) or notification (with method)", nil)
}

// handleInitialize negotiates the protocol version and advertises capabilities.
func (s *Server) handleInitialize(session types.ClientSession, id interface{}, rawParams json.RawMessage) *protocol.JSONRPCResponse {
	var initParams protocol.InitializeRequestParams
	if err := protocol.UnmarshalPayload(rawParams, &initParams); err != nil {
		return protocol.NewErrorResponse(id, protocol.ErrorCodeInvalidParams,
			fmt.Sprintf("Failed to parse initialize params: %v", err), nil)
	}

	var negotiated string
	switch initParams.ProtocolVersion {
	case protocol.CurrentProtocolVersion, protocol.OldProtocolVersion:
		negotiated = initParams.ProtocolVersion
	default:
		errMsg := fmt.Sprintf("Unsupported protocol version '%s'. Server supports '%s' and '%s'.",
			initParams.ProtocolVersion, protocol.CurrentProtocolVersion, protocol.OldProtocolVersion)
		return protocol.NewErrorResponse(id, protocol.ErrorCodeMCPUnsupportedProtocolVersion, errMsg, nil)
	}
	session.SetNegotiatedVersion(negotiated)
	s.logger.Info("Session %s: InitializeRequest from client %s (version %s)",
		session.SessionID(), initParams.ClientInfo.Name, initParams.ProtocolVersion)

	result := protocol.InitializeResult{
		ProtocolVersion: negotiated,
		Capabilities: protocol.ServerCapabilities{
			Tools: &struct {
				ListChanged bool `json:"listChanged,omitempty"`
			}{},
			Resources: &struct {
				Subscribe   bool `json:"subscribe,omitempty"`
				ListChanged bool `json:"listChanged,omitempty"`
			}{},
		},
		ServerInfo: protocol.Implementation{Name: s.serverName, Version: serverVersion},
	}
	return protocol.NewSuccessResponse(id, result)
}

// handleRequest routes a single JSON-RPC request after initial parsing.
func (s *Server) handleRequest(ctx context.Context, session types.ClientSession, id interface{}, method string, rawParams json.RawMessage) *protocol.JSONRPCResponse {
	s.logger.Debug("Handling request for session %s: Method=%s, ID=%v", session.SessionID(), method, id)

	switch method {
	case protocol.MethodListTools:
		return s.handleListTools(id)
	case protocol.MethodCallTool:
		return s.handleCallTool(ctx, id, rawParams)
	case protocol.MethodListResources:
		return s.handleListResources(id)
	case protocol.MethodListResourceTemplates:
		return s.handleListResourceTemplates(id)
	case protocol.MethodReadResource:
		return s.handleReadResource(id, rawParams)
	case protocol.MethodPing:
		return protocol.NewSuccessResponse(id, struct{}{})
	default:
		s.logger.Warn("Method not found for session %s: %s", session.SessionID(), method)
		return protocol.NewErrorResponse(id, protocol.ErrorCodeMethodNotFound,
			fmt.Sprintf("Method '%s' not implemented", method), nil)
	}
}

// handleListTools handles the 'tools/list' request.
func (s *Server) handleListTools(id interface{}) *protocol.JSONRPCResponse {
	return protocol.NewSuccessResponse(id, protocol.ListToolsResult{Tools: s.catalog.Tools()})
}
