// Package protocol defines the structures and constants for the Model Context Protocol (MCP).
package protocol

// --- Resource Access Structures ---

// Resource represents a piece of context available from the server.
// For this server every resource is a widget markup template keyed by its URI.
type Resource struct {
	URI         string                 `json:"uri"`
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	MimeType    string                 `json:"mimeType,omitempty"`
	Meta        map[string]interface{} `json:"_meta,omitempty"`
}

// ResourceTemplate describes a resource URI template.
type ResourceTemplate struct {
	URITemplate string                 `json:"uriTemplate"`
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	MimeType    string                 `json:"mimeType,omitempty"`
	Meta        map[string]interface{} `json:"_meta,omitempty"`
}

// ResourceContents holds the content returned by 'resources/read'.
type ResourceContents struct {
	URI      string                 `json:"uri"`
	MimeType string                 `json:"mimeType,omitempty"`
	Text     string                 `json:"text,omitempty"`
	Meta     map[string]interface{} `json:"_meta,omitempty"`
}

// ListResourcesResult defines the result for 'resources/list'.
type ListResourcesResult struct {
	Resources []Resource `json:"resources"`
}

// ListResourceTemplatesResult defines the result for 'resources/templates/list'.
type ListResourceTemplatesResult struct {
	ResourceTemplates []ResourceTemplate `json:"resourceTemplates"`
}

// ReadResourceParams defines parameters for 'resources/read'.
type ReadResourceParams struct {
	URI string `json:"uri"`
}

// ReadResourceResult defines the result for 'resources/read'.
type ReadResourceResult struct {
	Contents []ResourceContents `json:"contents"`
}
