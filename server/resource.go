package server

import (
	"encoding/json"
	"fmt"

	"github.com/voyagehq/travelmcp/catalog"
	"github.com/voyagehq/travelmcp/protocol"
)

// handleListResources handles the 'resources/list' request. Every widget
// template is advertised as a concrete resource so hosts can prefetch markup.
func (s *Server) handleListResources(id interface{}) *protocol.JSONRPCResponse {
	return protocol.NewSuccessResponse(id, protocol.ListResourcesResult{
		Resources: s.catalog.Resources(),
	})
}

// handleListResourceTemplates handles the 'resources/templates/list' request.
func (s *Server) handleListResourceTemplates(id interface{}) *protocol.JSONRPCResponse {
	return protocol.NewSuccessResponse(id, protocol.ListResourceTemplatesResult{
		ResourceTemplates: s.catalog.ResourceTemplates(),
	})
}

// handleReadResource handles the 'resources/read' request, serving widget
// markup by template URI.
func (s *Server) handleReadResource(id interface{}, rawParams json.RawMessage) *protocol.JSONRPCResponse {
	var params protocol.ReadResourceParams
	if err := protocol.UnmarshalPayload(rawParams, &params); err != nil {
		return protocol.NewErrorResponse(id, protocol.ErrorCodeInvalidParams,
			fmt.Sprintf("Failed to unmarshal ReadResource params: %v", err), nil)
	}

	widget, ok := s.catalog.ByTemplateURI(params.URI)
	if !ok {
		return protocol.NewErrorResponse(id, protocol.ErrorCodeMCPResourceNotFound,
			fmt.Sprintf("Unknown resource: %s", params.URI), nil)
	}

	return protocol.NewSuccessResponse(id, protocol.ReadResourceResult{
		Contents: []protocol.ResourceContents{
			{
				URI:      widget.TemplateURI,
				MimeType: protocol.WidgetMimeType,
				Text:     widget.HTML,
				Meta:     catalog.WidgetMeta(widget),
			},
		},
	})
}
