// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// --- Tooling Structures and Messages ---

// ToolInputSchema defines the expected input structure for a tool (JSON Schema subset).
type ToolInputSchema struct {
	Type                 string                    `json:"type"` // Typically "object"
	Properties           map[string]PropertyDetail `json:"properties,omitempty"`
	Required             []string                  `json:"required,omitempty"`
	AdditionalProperties *bool                     `json:"additionalProperties,omitempty"`
}

// PropertyDetail describes a single parameter within a ToolInputSchema.
type PropertyDetail struct {
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Enum        []interface{}   `json:"enum,omitempty"`    // Possible values for the property
	Minimum     *float64        `json:"minimum,omitempty"` // Numeric lower bound
	Maximum     *float64        `json:"maximum,omitempty"` // Numeric upper bound
	Items       *PropertyDetail `json:"items,omitempty"`   // Element schema for array properties
}

// ToolAnnotations provides optional hints about tool behavior.
type ToolAnnotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    *bool  `json:"readOnlyHint,omitempty"`
	DestructiveHint *bool  `json:"destructiveHint,omitempty"`
	IdempotentHint  *bool  `json:"idempotentHint,omitempty"`
	OpenWorldHint   *bool  `json:"openWorldHint,omitempty"`
}

// Tool defines a tool offered by the server.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema ToolInputSchema        `json:"inputSchema"`
	Annotations *ToolAnnotations       `json:"annotations,omitempty"`
	Meta        map[string]interface{} `json:"_meta,omitempty"`
}

// ListToolsResult defines the result payload for a successful 'tools/list' response.
type ListToolsResult struct {
	Tools []Tool `json:"tools"`
}

// CallToolParams defines the parameters for a 'tools/call' request.
type CallToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// CallToolResult defines the result payload for a 'tools/call' response.
// StructuredContent carries the machine-readable payload consumed by the
// widget renderer; Meta carries the widget-association keys.
type CallToolResult struct {
	Content           []Content              `json:"content"`
	StructuredContent interface{}            `json:"structuredContent,omitempty"`
	IsError           *bool                  `json:"isError,omitempty"`
	Meta              map[string]interface{} `json:"_meta,omitempty"`
}
