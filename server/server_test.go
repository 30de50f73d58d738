package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagehq/travelmcp/catalog"
	"github.com/voyagehq/travelmcp/logx"
	"github.com/voyagehq/travelmcp/protocol"
	"github.com/voyagehq/travelmcp/server"
	"github.com/voyagehq/travelmcp/travel"
	"github.com/voyagehq/travelmcp/types"
)

// mockClientSession is a minimal in-memory types.ClientSession.
type mockClientSession struct {
	id                string
	initialized       bool
	negotiatedVersion string
}

var _ types.ClientSession = (*mockClientSession)(nil)

func (m *mockClientSession) SessionID() string { return m.id }
func (m *mockClientSession) SendResponse(response protocol.JSONRPCResponse) error {
	return nil
}
func (m *mockClientSession) SendNotification(notification protocol.JSONRPCNotification) error {
	return nil
}
func (m *mockClientSession) Close() error                  { return nil }
func (m *mockClientSession) Initialize()                   { m.initialized = true }
func (m *mockClientSession) Initialized() bool             { return m.initialized }
func (m *mockClientSession) SetNegotiatedVersion(v string) { m.negotiatedVersion = v }
func (m *mockClientSession) GetNegotiatedVersion() string  { return m.negotiatedVersion }

func newTestServer(t *testing.T, opts ...server.Option) (*server.Server, *mockClientSession) {
	t.Helper()
	logger := logx.NewDefaultLogger()
	cat, err := catalog.New("does-not-exist", logger)
	require.NoError(t, err)
	search := travel.NewService(nil, nil, logger)

	srv := server.NewServer("test-travel-server", cat, search, opts...)
	session := &mockClientSession{id: "sess-1"}
	require.NoError(t, srv.RegisterSession(session))
	return srv, session
}

func newInitializedServer(t *testing.T, opts ...server.Option) (*server.Server, *mockClientSession) {
	t.Helper()
	srv, session := newTestServer(t, opts...)
	session.Initialize()
	return srv, session
}

func request(t *testing.T, id interface{}, method string, params interface{}) json.RawMessage {
	t.Helper()
	msg := map[string]interface{}{"jsonrpc": "2.0", "id": id, "method": method}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	return raw
}

func handleOne(t *testing.T, srv *server.Server, session *mockClientSession, raw json.RawMessage) *protocol.JSONRPCResponse {
	t.Helper()
	responses := srv.HandleMessage(context.Background(), session.id, raw)
	require.Len(t, responses, 1)
	return responses[0]
}

func TestHandshake_InitializeAndInitialized(t *testing.T) {
	srv, session := newTestServer(t)

	raw := request(t, "init-1", protocol.MethodInitialize, protocol.InitializeRequestParams{
		ProtocolVersion: protocol.CurrentProtocolVersion,
		ClientInfo:      protocol.Implementation{Name: "test-client", Version: "0.1"},
	})
	resp := handleOne(t, srv, session, raw)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(protocol.InitializeResult)
	require.True(t, ok, "Result is not InitializeResult, got %T", resp.Result)
	assert.Equal(t, protocol.CurrentProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "test-travel-server", result.ServerInfo.Name)
	assert.NotNil(t, result.Capabilities.Tools)
	assert.NotNil(t, result.Capabilities.Resources)
	assert.Equal(t, protocol.CurrentProtocolVersion, session.GetNegotiatedVersion())

	notif := []byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	responses := srv.HandleMessage(context.Background(), session.id, notif)
	assert.Nil(t, responses, "initialized notification produces no response")
	assert.True(t, session.Initialized())
}

func TestHandshake_OldProtocolVersionAccepted(t *testing.T) {
	srv, session := newTestServer(t)

	raw := request(t, 1, protocol.MethodInitialize, protocol.InitializeRequestParams{
		ProtocolVersion: protocol.OldProtocolVersion,
		ClientInfo:      protocol.Implementation{Name: "legacy-client"},
	})
	resp := handleOne(t, srv, session, raw)
	require.Nil(t, resp.Error)
	result := resp.Result.(protocol.InitializeResult)
	assert.Equal(t, protocol.OldProtocolVersion, result.ProtocolVersion)
}

func TestHandshake_UnsupportedProtocolVersion(t *testing.T) {
	srv, session := newTestServer(t)

	raw := request(t, 1, protocol.MethodInitialize, protocol.InitializeRequestParams{
		ProtocolVersion: "1999-01-01",
	})
	resp := handleOne(t, srv, session, raw)
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeMCPUnsupportedProtocolVersion, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "1999-01-01")
}

func TestHandshake_RequestBeforeInitializeRejected(t *testing.T) {
	srv, session := newTestServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodListTools, nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeInvalidRequest, resp.Error.Code)
}

func TestHandleMessage_UnknownSession(t *testing.T) {
	srv, _ := newInitializedServer(t)

	responses := srv.HandleMessage(context.Background(), "no-such-session", request(t, 1, protocol.MethodPing, nil))
	assert.Nil(t, responses)
}

func TestHandleMessage_BatchRejected(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, []byte(`[{"jsonrpc":"2.0","id":1,"method":"ping"}]`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeInvalidRequest, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Batch")
}

func TestHandleMessage_ParseError(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, []byte(`{"jsonrpc":"2.0","id":1,`))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeParseError, resp.Error.Code)
	assert.Nil(t, resp.ID)
}

func TestHandleMessage_Ping(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, "ping-1", protocol.MethodPing, nil))
	require.Nil(t, resp.Error)
	resultBytes, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(resultBytes))
}

func TestHandleMessage_MethodNotFound(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, "prompts/list", nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeMethodNotFound, resp.Error.Code)
}

func TestListTools(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodListTools, nil))
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(protocol.ListToolsResult)
	require.True(t, ok)
	require.Len(t, result.Tools, 2)

	names := []string{result.Tools[0].Name, result.Tools[1].Name}
	assert.ElementsMatch(t, []string{catalog.ToolSearchHotels, catalog.ToolSearchFlights}, names)
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Meta[protocol.MetaOutputTemplate], "every tool advertises its widget template")
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodCallTool, protocol.CallToolParams{
		Name:      "book_hotel",
		Arguments: map[string]interface{}{},
	}))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeMCPToolNotFound, resp.Error.Code)
	assert.Equal(t, "Unknown tool: book_hotel", resp.Error.Message)
}

func TestCallTool_ValidationErrorSurfaced(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodCallTool, protocol.CallToolParams{
		Name: catalog.ToolSearchHotels,
		Arguments: map[string]interface{}{
			"destination": "Paris",
			"checkIn":     "2026-09-10",
		},
	}))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeMCPInvalidArgument, resp.Error.Code)
	assert.Equal(t, "checkOut: is required", resp.Error.Message)
}

func TestCallTool_HotelFallbackResult(t *testing.T) {
	srv, session := newInitializedServer(t, server.WithMockModeDisclaimer(true))

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodCallTool, protocol.CallToolParams{
		Name: catalog.ToolSearchHotels,
		Arguments: map[string]interface{}{
			"destination": "Paris",
			"checkIn":     "2026-09-10",
			"checkOut":    "2026-09-13",
			"starRating":  4,
		},
	}))
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(protocol.CallToolResult)
	require.True(t, ok, "Result is not CallToolResult, got %T", resp.Result)

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(protocol.TextContent)
	require.True(t, ok)
	assert.Equal(t,
		"Found 2 hotels in Paris from 2026-09-10 to 2026-09-13. (Using mock data - set RAPIDAPI_KEY for real results)",
		text.Text)

	assert.Equal(t, catalog.HotelTemplateURI, result.Meta[protocol.MetaOutputTemplate])

	structured, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	var payload struct {
		Destination   string `json:"destination"`
		Guests        int    `json:"guests"`
		Rooms         int    `json:"rooms"`
		TotalResults  int    `json:"totalResults"`
		UsingMockData bool   `json:"usingMockData"`
		Hotels        []struct {
			ID         string `json:"id"`
			StarRating int    `json:"starRating"`
		} `json:"hotels"`
	}
	require.NoError(t, json.Unmarshal(structured, &payload))
	assert.Equal(t, "Paris", payload.Destination)
	assert.Equal(t, 2, payload.Guests)
	assert.Equal(t, 1, payload.Rooms)
	assert.Equal(t, 2, payload.TotalResults)
	assert.True(t, payload.UsingMockData)
	require.Len(t, payload.Hotels, 2)
	for _, h := range payload.Hotels {
		assert.GreaterOrEqual(t, h.StarRating, 4)
	}
}

func TestCallTool_FlightFallbackResult(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodCallTool, protocol.CallToolParams{
		Name: catalog.ToolSearchFlights,
		Arguments: map[string]interface{}{
			"origin":        "SEA",
			"destination":   "SJD",
			"departureDate": "2026-10-01",
			"returnDate":    "2026-10-08",
		},
	}))
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(protocol.CallToolResult)
	require.True(t, ok)

	text := result.Content[0].(protocol.TextContent)
	assert.Equal(t, "Found 3 flights from SEA to SJD on 2026-10-01 (returning 2026-10-08).", text.Text,
		"no disclaimer without mock mode")

	structured, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	var payload struct {
		CabinClass    string `json:"cabinClass"`
		IsRoundTrip   bool   `json:"isRoundTrip"`
		TotalResults  int    `json:"totalResults"`
		UsingMockData bool   `json:"usingMockData"`
	}
	require.NoError(t, json.Unmarshal(structured, &payload))
	assert.Equal(t, "economy", payload.CabinClass)
	assert.True(t, payload.IsRoundTrip)
	assert.Equal(t, 3, payload.TotalResults)
	assert.True(t, payload.UsingMockData)
}

func TestReadResource_KnownURI(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodReadResource, protocol.ReadResourceParams{
		URI: catalog.FlightTemplateURI,
	}))
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(protocol.ReadResourceResult)
	require.True(t, ok)
	require.Len(t, result.Contents, 1)
	contents := result.Contents[0]
	assert.Equal(t, catalog.FlightTemplateURI, contents.URI)
	assert.Equal(t, protocol.WidgetMimeType, contents.MimeType)
	assert.Contains(t, contents.Text, "Widget: flight-results")
	assert.Equal(t, catalog.FlightTemplateURI, contents.Meta[protocol.MetaOutputTemplate])
}

func TestReadResource_UnknownURI(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodReadResource, protocol.ReadResourceParams{
		URI: "ui://widgets/templates/unknown/v1",
	}))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeMCPResourceNotFound, resp.Error.Code)
	assert.Equal(t, "Unknown resource: ui://widgets/templates/unknown/v1", resp.Error.Message)
}

func TestListResourcesAndTemplates(t *testing.T) {
	srv, session := newInitializedServer(t)

	resp := handleOne(t, srv, session, request(t, 1, protocol.MethodListResources, nil))
	require.Nil(t, resp.Error)
	listResult, ok := resp.Result.(protocol.ListResourcesResult)
	require.True(t, ok)
	assert.Len(t, listResult.Resources, 2)

	resp = handleOne(t, srv, session, request(t, 2, protocol.MethodListResourceTemplates, nil))
	require.Nil(t, resp.Error)
	tmplResult, ok := resp.Result.(protocol.ListResourceTemplatesResult)
	require.True(t, ok)
	assert.Len(t, tmplResult.ResourceTemplates, 2)
}

func TestRegisterSession_Duplicate(t *testing.T) {
	srv, session := newTestServer(t)

	err := srv.RegisterSession(session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), session.SessionID())

	// Unregister twice is harmless.
	srv.UnregisterSession(session.SessionID())
	srv.UnregisterSession(session.SessionID())
}

func TestSessionIsolation(t *testing.T) {
	srv, first := newInitializedServer(t)

	second := &mockClientSession{id: "sess-2"}
	require.NoError(t, srv.RegisterSession(second))

	// The second session has not completed the handshake, so requests fail
	// even though the first session is fully initialized.
	resp := handleOne(t, srv, second, request(t, 1, protocol.MethodListTools, nil))
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.ErrorCodeInvalidRequest, resp.Error.Code)

	resp = handleOne(t, srv, first, request(t, 2, protocol.MethodListTools, nil))
	assert.Nil(t, resp.Error)
}

func TestCallTool_ArgumentsDefaultingVisibleInSummary(t *testing.T) {
	srv, session := newInitializedServer(t)

	for i, args := range []map[string]interface{}{
		{"origin": "JFK", "destination": "LHR", "departureDate": "2026-11-05"},
		{"origin": "JFK", "destination": "LHR", "departureDate": "2026-11-05", "passengers": 3},
	} {
		resp := handleOne(t, srv, session, request(t, fmt.Sprintf("call-%d", i), protocol.MethodCallTool, protocol.CallToolParams{
			Name:      catalog.ToolSearchFlights,
			Arguments: args,
		}))
		require.Nil(t, resp.Error)
		result := resp.Result.(protocol.CallToolResult)
		text := result.Content[0].(protocol.TextContent)
		assert.Equal(t, "Found 3 flights from JFK to LHR on 2026-11-05.", text.Text)
	}
}
