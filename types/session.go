package types

import "github.com/voyagehq/travelmcp/protocol"

// ClientSession represents an active connection from a single client.
// The core server uses this interface to deliver responses and notifications
// over whatever transport the session is bound to.
type ClientSession interface {
	// SessionID returns a unique identifier for this session.
	SessionID() string

	// SendResponse sends a JSON-RPC response to the client session.
	SendResponse(response protocol.JSONRPCResponse) error

	// SendNotification sends a JSON-RPC notification to the client session.
	SendNotification(notification protocol.JSONRPCNotification) error

	// Close terminates the client session and cleans up resources.
	// It must be safe to call more than once.
	Close() error

	// Initialize marks the session as having completed the MCP handshake.
	Initialize()

	// Initialized returns true if the session has completed the MCP handshake.
	Initialized() bool

	// SetNegotiatedVersion stores the protocol version agreed upon during initialization.
	SetNegotiatedVersion(version string)

	// GetNegotiatedVersion returns the protocol version agreed upon during initialization.
	GetNegotiatedVersion() string
}
