// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

const (
	// CurrentProtocolVersion defines the MCP version this server implements.
	CurrentProtocolVersion = "2025-03-26"
	// OldProtocolVersion is an older version accepted for compatibility.
	OldProtocolVersion = "2024-11-05"

	// --- Message Type (Method Name) Constants ---
	// These align with the JSON-RPC 'method' field names from the spec.

	// Initialization
	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized" // Notification

	// Tools
	MethodListTools = "tools/list"
	MethodCallTool  = "tools/call"

	// Resources
	MethodListResources         = "resources/list"
	MethodListResourceTemplates = "resources/templates/list"
	MethodReadResource          = "resources/read"

	// Ping
	MethodPing = "ping"
)

// Widget metadata keys attached to tools, resources, and tool-call results so the
// host can associate a renderable output template with each response.
const (
	MetaOutputTemplate         = "openai/outputTemplate"
	MetaToolInvoking           = "openai/toolInvocation/invoking"
	MetaToolInvoked            = "openai/toolInvocation/invoked"
	MetaWidgetAccessible       = "openai/widgetAccessible"
	MetaResultCanProduceWidget = "openai/resultCanProduceWidget"
)

// WidgetMimeType is the mime type advertised for widget markup resources.
const WidgetMimeType = "text/html+skybridge"
