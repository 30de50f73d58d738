// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// --- Initialization Structures ---

// Implementation describes a client or server implementation.
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ClientCapabilities describes the capabilities advertised by a client.
type ClientCapabilities struct {
	Roots *struct {
		ListChanged bool `json:"listChanged,omitempty"`
	} `json:"roots,omitempty"`
	Sampling map[string]interface{} `json:"sampling,omitempty"`
}

// ServerCapabilities describes the capabilities advertised by this server.
type ServerCapabilities struct {
	Tools *struct {
		ListChanged bool `json:"listChanged,omitempty"`
	} `json:"tools,omitempty"`
	Resources *struct {
		Subscribe   bool `json:"subscribe,omitempty"`
		ListChanged bool `json:"listChanged,omitempty"`
	} `json:"resources,omitempty"`
}

// InitializeRequestParams is the payload of the 'initialize' request.
type InitializeRequestParams struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ClientCapabilities `json:"capabilities"`
	ClientInfo      Implementation     `json:"clientInfo"`
}

// InitializeResult is the payload of a successful 'initialize' response.
type InitializeResult struct {
	ProtocolVersion string             `json:"protocolVersion"`
	Capabilities    ServerCapabilities `json:"capabilities"`
	ServerInfo      Implementation     `json:"serverInfo"`
	Instructions    string             `json:"instructions,omitempty"`
}

// InitializedNotificationParams is the payload for the 'initialized' notification (empty).
type InitializedNotificationParams struct{}

// --- Content Structures ---

// Content defines the interface for different types of content in results.
type Content interface {
	GetType() string
}

// TextContent represents textual content.
type TextContent struct {
	Type string `json:"type"` // Should always be "text"
	Text string `json:"text"`
}

func (tc TextContent) GetType() string { return tc.Type }

// NewTextContent builds a TextContent part.
func NewTextContent(text string) TextContent {
	return TextContent{Type: "text", Text: text}
}
