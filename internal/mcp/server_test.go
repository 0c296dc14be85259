package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"priorank/internal/config"
	"priorank/internal/engine"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	eng, err := engine.New(cfg.EngineConfig())
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	return New(eng, cfg)
}

func callTool(t *testing.T, s *Server, name, arguments string) *jsonRPCResponse {
	t.Helper()
	msg := `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"` + name + `","arguments":` + arguments + `}}`
	resp := s.handleMessage(context.Background(), msg)
	if resp == nil {
		t.Fatalf("tools/call %s: no response", name)
	}
	return resp
}

func toolText(t *testing.T, resp *jsonRPCResponse) (string, bool) {
	t.Helper()
	result, ok := resp.Result.(callToolResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	return result.Content[0].Text, result.IsError
}

func TestHandleMessage_ParseError(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(context.Background(), "{not json")
	if resp.Error == nil || resp.Error.Code != -32700 {
		t.Errorf("expected -32700 parse error, got %+v", resp.Error)
	}
}

func TestHandleMessage_MethodNotFound(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(context.Background(), `{"jsonrpc":"2.0","id":1,"method":"nope"}`)
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("expected -32601, got %+v", resp.Error)
	}
}

func TestHandleMessage_Initialize(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(context.Background(), `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	if resp.Error != nil {
		t.Fatalf("initialize error: %+v", resp.Error)
	}
	result, ok := resp.Result.(initializeResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if result.ServerInfo.Name != "priorank" {
		t.Errorf("server name = %q, want priorank", result.ServerInfo.Name)
	}
}

func TestToolsList(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(context.Background(), `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	result, ok := resp.Result.(toolsListResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}

	names := make(map[string]bool)
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"feed", "prioritize_keyword", "top_keywords", "get_session"} {
		if !names[want] {
			t.Errorf("tools/list missing %q", want)
		}
	}
}

func TestFeedTool(t *testing.T) {
	s := newTestServer(t)

	text, isErr := toolText(t, callTool(t, s, "feed", `{"text":"hello hello world"}`))
	if isErr {
		t.Fatalf("feed returned error content: %s", text)
	}

	var result feedResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatalf("feed result is not JSON: %v", err)
	}
	if result.Keywords != "hello world" {
		t.Errorf("keywords = %q, want %q", result.Keywords, "hello world")
	}
	if result.TrackedWords != 2 {
		t.Errorf("tracked_words = %d, want 2", result.TrackedWords)
	}
}

func TestPrioritizeKeywordTool(t *testing.T) {
	s := newTestServer(t)

	callTool(t, s, "feed", `{"text":"just one message here"}`)
	for i := 0; i < 4; i++ {
		if _, isErr := toolText(t, callTool(t, s, "prioritize_keyword", `{"word":"message"}`)); isErr {
			t.Fatal("prioritize_keyword returned error content")
		}
	}

	text, _ := toolText(t, callTool(t, s, "feed", `{"text":"just a message"}`))
	var result feedResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatal(err)
	}
	if result.Keywords != "message just" {
		t.Errorf("keywords = %q, want %q", result.Keywords, "message just")
	}
}

func TestPrioritizeKeywordTool_InvalidWord(t *testing.T) {
	s := newTestServer(t)

	text, isErr := toolText(t, callTool(t, s, "prioritize_keyword", `{"word":"!!!"}`))
	if !isErr {
		t.Errorf("expected error content for punctuation-only word, got %q", text)
	}
}

func TestTopKeywordsTool(t *testing.T) {
	s := newTestServer(t)

	callTool(t, s, "feed", `{"text":"alpha alpha beta"}`)

	text, isErr := toolText(t, callTool(t, s, "top_keywords", `{"limit":1}`))
	if isErr {
		t.Fatalf("top_keywords returned error content: %s", text)
	}

	var result topKeywordsResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Keywords) != 1 || result.Keywords[0].Word != "alpha" || result.Keywords[0].Score != 2 {
		t.Errorf("keywords = %v, want single entry alpha/2", result.Keywords)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}
}

func TestGetSessionTool(t *testing.T) {
	s := newTestServer(t)

	text, isErr := toolText(t, callTool(t, s, "get_session", `{}`))
	if isErr {
		t.Fatalf("get_session returned error content: %s", text)
	}

	var result sessionResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		t.Fatal(err)
	}
	if result.SessionID == "" {
		t.Error("session_id is empty")
	}
	if result.MinKeywordLength != 4 {
		t.Errorf("min_keyword_length = %d, want 4", result.MinKeywordLength)
	}
}

func TestReadResource(t *testing.T) {
	s := newTestServer(t)
	callTool(t, s, "feed", `{"text":"alpha alpha beta"}`)

	resp := s.handleMessage(context.Background(),
		`{"jsonrpc":"2.0","id":3,"method":"resources/read","params":{"uri":"priorank://top"}}`)
	if resp.Error != nil {
		t.Fatalf("resources/read error: %+v", resp.Error)
	}
	result, ok := resp.Result.(readResourceResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if len(result.Contents) != 1 || !strings.Contains(result.Contents[0].Text, "alpha") {
		t.Errorf("resource text = %+v, want alpha listed", result.Contents)
	}
}

func TestReadResource_Unknown(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleMessage(context.Background(),
		`{"jsonrpc":"2.0","id":4,"method":"resources/read","params":{"uri":"priorank://nope"}}`)
	if resp.Error == nil {
		t.Error("expected error for unknown resource")
	}
}
