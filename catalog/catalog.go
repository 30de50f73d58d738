// Package catalog holds the static tool and widget catalogs. Both are built
// once at process start and are read-only afterwards, so lookups need no
// locking.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/voyagehq/travelmcp/protocol"
	"github.com/voyagehq/travelmcp/travel"
	"github.com/voyagehq/travelmcp/types"
	"github.com/voyagehq/travelmcp/util/schema"
)

// Tool name and widget template constants.
const (
	ToolSearchHotels  = "search_hotels"
	ToolSearchFlights = "search_flights"

	HotelTemplateURI  = "ui://widgets/templates/hotel/recommendations/v1"
	FlightTemplateURI = "ui://widgets/templates/flight/recommendations/v1"
)

// WidgetDescriptor describes a renderable widget associated with a tool's
// response. TemplateURI is the unique key for resource listing and read
// resolution.
type WidgetDescriptor struct {
	ID           string
	Title        string
	TemplateURI  string
	Invoking     string
	Invoked      string
	HTML         string
	ResponseText string
}

// ToolDescriptor binds a tool definition to its widget.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema protocol.ToolInputSchema
	Annotations *protocol.ToolAnnotations
	WidgetID    string
}

// Catalog is the immutable tool and widget registry.
type Catalog struct {
	tools       []ToolDescriptor
	widgets     []WidgetDescriptor
	toolsByName map[string]ToolDescriptor
	widgetsByID map[string]WidgetDescriptor
	byURI       map[string]WidgetDescriptor
}

// New builds the catalog, loading widget markup from componentsDir. A missing
// markup file is logged and substituted with a minimal placeholder rather than
// aborting startup; a broken invariant (dangling widget reference, duplicate
// template URI) aborts startup.
func New(componentsDir string, logger types.Logger) (*Catalog, error) {
	widgets := []WidgetDescriptor{
		{
			ID:           ToolSearchHotels,
			Title:        "Hotel Search Results",
			TemplateURI:  HotelTemplateURI,
			Invoking:     "Searching for hotels",
			Invoked:      "Searched for hotels",
			HTML:         readWidgetHTML(componentsDir, "hotel-results", logger),
			ResponseText: "Found matching hotels",
		},
		{
			ID:           ToolSearchFlights,
			Title:        "Flight Search Results",
			TemplateURI:  FlightTemplateURI,
			Invoking:     "Searching for flights",
			Invoked:      "Searched for flights",
			HTML:         readWidgetHTML(componentsDir, "flight-results", logger),
			ResponseText: "Found matching flights",
		},
	}

	readOnly := true
	notDestructive := false
	closedWorld := false
	annotations := &protocol.ToolAnnotations{
		ReadOnlyHint:    &readOnly,
		DestructiveHint: &notDestructive,
		OpenWorldHint:   &closedWorld,
	}

	tools := []ToolDescriptor{
		{
			Name: ToolSearchHotels,
			Description: "Search for hotels worldwide with filters for dates, guests, amenities, and pricing. " +
				"Returns detailed hotel information including availability, rates, and booking links.",
			InputSchema: schema.FromStruct(travel.HotelSearchArgs{}),
			Annotations: annotations,
			WidgetID:    ToolSearchHotels,
		},
		{
			Name: ToolSearchFlights,
			Description: "Search for flights with comprehensive filters including airlines, stops, cabin class, " +
				"and price range. Supports round-trip and one-way bookings.",
			InputSchema: schema.FromStruct(travel.FlightSearchArgs{}),
			Annotations: annotations,
			WidgetID:    ToolSearchFlights,
		},
	}

	c := &Catalog{
		tools:       tools,
		widgets:     widgets,
		toolsByName: make(map[string]ToolDescriptor, len(tools)),
		widgetsByID: make(map[string]WidgetDescriptor, len(widgets)),
		byURI:       make(map[string]WidgetDescriptor, len(widgets)),
	}
	for _, w := range widgets {
		if _, dup := c.byURI[w.TemplateURI]; dup {
			return nil, fmt.Errorf("duplicate widget template URI: %s", w.TemplateURI)
		}
		c.widgetsByID[w.ID] = w
		c.byURI[w.TemplateURI] = w
	}
	for _, t := range tools {
		if _, ok := c.widgetsByID[t.WidgetID]; !ok {
			return nil, fmt.Errorf("tool %q references unknown widget %q", t.Name, t.WidgetID)
		}
		c.toolsByName[t.Name] = t
	}
	return c, nil
}

// ByName looks up a tool descriptor.
func (c *Catalog) ByName(name string) (ToolDescriptor, bool) {
	t, ok := c.toolsByName[name]
	return t, ok
}

// ByTemplateURI looks up a widget descriptor by its template URI.
func (c *Catalog) ByTemplateURI(uri string) (WidgetDescriptor, bool) {
	w, ok := c.byURI[uri]
	return w, ok
}

// WidgetFor returns the widget bound to a tool descriptor.
func (c *Catalog) WidgetFor(tool ToolDescriptor) WidgetDescriptor {
	return c.widgetsByID[tool.WidgetID]
}

// Tools assembles the protocol-level tool list, widget metadata attached.
func (c *Catalog) Tools() []protocol.Tool {
	tools := make([]protocol.Tool, 0, len(c.tools))
	for _, t := range c.tools {
		tools = append(tools, protocol.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
			Annotations: t.Annotations,
			Meta:        WidgetMeta(c.widgetsByID[t.WidgetID]),
		})
	}
	return tools
}

// Resources assembles the widget catalog as resource entries.
func (c *Catalog) Resources() []protocol.Resource {
	resources := make([]protocol.Resource, 0, len(c.widgets))
	for _, w := range c.widgets {
		resources = append(resources, protocol.Resource{
			URI:         w.TemplateURI,
			Name:        w.Title,
			Description: fmt.Sprintf("%s widget markup", w.Title),
			MimeType:    protocol.WidgetMimeType,
			Meta:        WidgetMeta(w),
		})
	}
	return resources
}

// ResourceTemplates assembles the widget catalog as URI template entries.
func (c *Catalog) ResourceTemplates() []protocol.ResourceTemplate {
	templates := make([]protocol.ResourceTemplate, 0, len(c.widgets))
	for _, w := range c.widgets {
		templates = append(templates, protocol.ResourceTemplate{
			URITemplate: w.TemplateURI,
			Name:        w.Title,
			Description: fmt.Sprintf("%s widget markup", w.Title),
			MimeType:    protocol.WidgetMimeType,
			Meta:        WidgetMeta(w),
		})
	}
	return templates
}

// WidgetMeta builds the metadata map the host uses to render the matching
// widget for a tool response.
func WidgetMeta(w WidgetDescriptor) map[string]interface{} {
	return map[string]interface{}{
		protocol.MetaOutputTemplate:         w.TemplateURI,
		protocol.MetaToolInvoking:           w.Invoking,
		protocol.MetaToolInvoked:            w.Invoked,
		protocol.MetaWidgetAccessible:       true,
		protocol.MetaResultCanProduceWidget: true,
	}
}

// readWidgetHTML loads a widget component's markup, substituting a minimal
// placeholder when the directory or file is missing.
func readWidgetHTML(componentsDir, componentName string, logger types.Logger) string {
	placeholder := fmt.Sprintf(
		"<!DOCTYPE html><html><body><div id=\"root\">Widget: %s</div></body></html>", componentName)

	if _, err := os.Stat(componentsDir); err != nil {
		logger.Warn("Widget components directory not found at %s", componentsDir)
		return placeholder
	}
	htmlPath := filepath.Join(componentsDir, componentName+".html")
	data, err := os.ReadFile(htmlPath)
	if err != nil {
		logger.Warn("Widget HTML for %q not found", componentName)
		return placeholder
	}
	return string(data)
}
