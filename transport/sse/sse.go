// Package sse provides the hybrid SSE transport for the travel MCP server:
// a persistent GET stream for server-to-client events and an HTTP POST
// endpoint for client-to-server JSON-RPC messages. Responses to posted
// requests are delivered over the SSE stream, not in the POST body.
package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/voyagehq/travelmcp/logx"
	"github.com/voyagehq/travelmcp/protocol"
	"github.com/voyagehq/travelmcp/types"
)

// MCPServerLogic is the interface the transport needs from the core server.
type MCPServerLogic interface {
	HandleMessage(ctx context.Context, sessionID string, rawMessage json.RawMessage) []*protocol.JSONRPCResponse
	RegisterSession(session types.ClientSession) error
	UnregisterSession(sessionID string)
}

// sseSession is an active SSE connection. It implements types.ClientSession.
type sseSession struct {
	done              chan struct{}
	closeOnce         sync.Once
	closed            atomic.Bool
	eventQueue        chan string
	sessionID         string
	initialized       atomic.Bool
	logger            types.Logger
	negotiatedVersion string
}

var _ types.ClientSession = (*sseSession)(nil)

func newSSESession(logger types.Logger) *sseSession {
	return &sseSession{
		done:       make(chan struct{}),
		eventQueue: make(chan string, 100),
		sessionID:  uuid.NewString(),
		logger:     logger,
	}
}

func (s *sseSession) SessionID() string {
	return s.sessionID
}

// SendResponse formats and queues a response for the SSE writing loop.
func (s *sseSession) SendResponse(response protocol.JSONRPCResponse) error {
	eventData, err := json.Marshal(response)
	if err != nil {
		s.logger.Error("Session %s: Failed to marshal response for ID %v: %v", s.sessionID, response.ID, err)
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	return s.queueEvent(fmt.Sprintf("event: message\ndata: %s\n\n", string(eventData)))
}

// SendNotification formats and queues a notification for the SSE writing loop.
func (s *sseSession) SendNotification(notification protocol.JSONRPCNotification) error {
	eventData, err := json.Marshal(notification)
	if err != nil {
		s.logger.Error("Session %s: Failed to marshal notification %s: %v", s.sessionID, notification.Method, err)
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	return s.queueEvent(fmt.Sprintf("event: message\ndata: %s\n\n", string(eventData)))
}

func (s *sseSession) queueEvent(eventString string) error {
	if s.closed.Load() {
		return fmt.Errorf("session closed")
	}
	select {
	case s.eventQueue <- eventString:
		return nil
	case <-s.done:
		s.logger.Warn("Session %s: Attempted send but session is done.", s.sessionID)
		return fmt.Errorf("session closed")
	default:
		s.logger.Error("Session %s: Event queue full.", s.sessionID)
		return fmt.Errorf("event queue full")
	}
}

// Close signals the SSE writing loop to terminate. Safe to call repeatedly.
func (s *sseSession) Close() error {
	if s.closed.Load() {
		return nil
	}
	s.closeOnce.Do(func() {
		s.logger.Info("Session %s: Closing.", s.sessionID)
		s.closed.Store(true)
		close(s.done)
	})
	return nil
}

func (s *sseSession) Initialize() {
	s.initialized.Store(true)
}

func (s *sseSession) Initialized() bool {
	return s.initialized.Load()
}

// SetNegotiatedVersion stores the protocol version agreed during initialization.
// It is set once, before any concurrent reads.
func (s *sseSession) SetNegotiatedVersion(version string) {
	s.negotiatedVersion = version
}

func (s *sseSession) GetNegotiatedVersion() string {
	return s.negotiatedVersion
}

// SSEContextFunc customizes the context passed to the core server per POST
// request, for example to inject values from HTTP headers.
type SSEContextFunc func(ctx context.Context, r *http.Request) context.Context

// SSEServer implements the HTTP handlers for the hybrid SSE/POST transport.
type SSEServer struct {
	mcpServer   MCPServerLogic
	sessions    sync.Map // sessionID -> *sseSession
	logger      types.Logger
	contextFunc SSEContextFunc
	ssePath     string
	messagePath string
}

// SSEServerOptions configure the SSEServer.
type SSEServerOptions struct {
	Logger      types.Logger
	ContextFunc SSEContextFunc
	SSEPath     string
	MessagePath string
}

// NewSSEServer creates the transport bound to the given core server logic.
func NewSSEServer(mcpServer MCPServerLogic, opts SSEServerOptions) *SSEServer {
	logger := opts.Logger
	if logger == nil {
		logger = logx.NewDefaultLogger()
	}

	ssePath := opts.SSEPath
	if ssePath == "" {
		ssePath = "/mcp"
	}
	if !strings.HasPrefix(ssePath, "/") {
		ssePath = "/" + ssePath
	}

	messagePath := opts.MessagePath
	if messagePath == "" {
		messagePath = "/mcp/messages"
	}
	if !strings.HasPrefix(messagePath, "/") {
		messagePath = "/" + messagePath
	}

	s := &SSEServer{
		mcpServer:   mcpServer,
		logger:      logger,
		contextFunc: opts.ContextFunc,
		ssePath:     ssePath,
		messagePath: messagePath,
	}
	logger.Info("SSE transport created. Stream: %s, Messages: %s", ssePath, messagePath)
	return s
}

// ServeHTTP routes requests to the stream or message handler and applies the
// permissive CORS policy expected by browser-embedded MCP hosts.
func (s *SSEServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch r.URL.Path {
	case s.ssePath:
		s.HandleSSE(w, r)
	case s.messagePath:
		s.HandleMessage(w, r)
	default:
		s.logger.Warn("ServeHTTP: Path not found: %s", r.URL.Path)
		http.NotFound(w, r)
	}
}

// HandleSSE handles the persistent GET stream. It registers a new session,
// sends the endpoint event carrying the per-session POST URL, then pumps
// queued events until the session or the request context ends.
func (s *SSEServer) HandleSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	session := newSSESession(s.logger)
	s.sessions.Store(session.SessionID(), session)
	defer s.sessions.Delete(session.SessionID())

	if err := s.mcpServer.RegisterSession(session); err != nil {
		s.logger.Error("Failed to register session %s: %v", session.SessionID(), err)
		http.Error(w, "Session registration failed", http.StatusInternalServerError)
		return
	}
	defer s.mcpServer.UnregisterSession(session.SessionID())
	defer session.Close()

	s.logger.Info("SSE connection established for session %s from %s", session.SessionID(), r.RemoteAddr)

	fmt.Fprintf(w, "event: endpoint\ndata: %s\n\n", s.messageEndpointURL(session.SessionID()))
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case eventString := <-session.eventQueue:
			if _, err := fmt.Fprint(w, eventString); err != nil {
				s.logger.Error("Session %s: Write to client failed: %v. Closing stream.", session.SessionID(), err)
				return
			}
			flusher.Flush()
		case <-session.done:
			s.logger.Info("Session %s: Closed, ending SSE stream.", session.SessionID())
			return
		case <-ctx.Done():
			s.logger.Info("Session %s: Request context done (%v), ending SSE stream.", session.SessionID(), ctx.Err())
			return
		}
	}
}

// HandleMessage processes a client JSON-RPC message posted against an open
// session. The POST is acknowledged with 204; any responses travel back over
// the session's SSE stream.
func (s *SSEServer) HandleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSONRPCError(w, http.StatusMethodNotAllowed, protocol.ErrorCodeInvalidRequest, "Method not allowed, use POST")
		return
	}

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		s.writeJSONRPCError(w, http.StatusBadRequest, protocol.ErrorCodeInvalidParams, "Missing sessionId query parameter")
		return
	}
	sessionValue, ok := s.sessions.Load(sessionID)
	if !ok {
		s.writeJSONRPCError(w, http.StatusNotFound, protocol.ErrorCodeMCPSessionNotFound,
			fmt.Sprintf("Invalid or expired session ID: %s", sessionID))
		return
	}
	session := sessionValue.(*sseSession)

	ctx := r.Context()
	if s.contextFunc != nil {
		ctx = s.contextFunc(ctx, r)
	}

	var rawMessage json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&rawMessage); err != nil {
		s.writeJSONRPCError(w, http.StatusBadRequest, protocol.ErrorCodeParseError, fmt.Sprintf("Parse error: %v", err))
		return
	}

	responses := s.mcpServer.HandleMessage(ctx, sessionID, rawMessage)
	for _, response := range responses {
		if response == nil {
			continue
		}
		if err := session.SendResponse(*response); err != nil {
			s.logger.Error("Session %s: Failed to queue response ID %v: %v", sessionID, response.ID, err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *SSEServer) writeJSONRPCError(w http.ResponseWriter, httpStatus int, code protocol.ErrorCode, message string) {
	response := protocol.JSONRPCResponse{
		JSONRPC: "2.0",
		Error:   &protocol.ErrorPayload{Code: code, Message: message},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("Failed to write JSON-RPC error response: %v", err)
	}
}

func (s *SSEServer) messageEndpointURL(sessionID string) string {
	return fmt.Sprintf("%s?sessionId=%s", s.messagePath, sessionID)
}
