package mcp

import (
	"context"
	"fmt"
	"strings"
)

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "priorank://top",
		Name:        "Top Keywords",
		Description: "The highest-priority keywords accumulated in this session",
		MimeType:    "text/plain",
	},
	{
		URI:         "priorank://session",
		Name:        "Session Summary",
		Description: "Session id, engine configuration and tracked-word count",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "priorank://top":
		return s.topResource(), nil
	case "priorank://session":
		return s.sessionResource(), nil
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) topResource() string {
	keywords := s.engine.Top(0)
	if len(keywords) == 0 {
		return "No keywords tracked yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d keyword(s):\n", len(keywords))
	for i, kw := range keywords {
		fmt.Fprintf(&b, "%2d. %s (%d)\n", i+1, kw.Word, kw.Score)
	}
	return b.String()
}

func (s *Server) sessionResource() string {
	cfg := s.engine.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "Session: %s\n", s.sessionID)
	fmt.Fprintf(&b, "Tracked words: %d\n", s.engine.Len())
	fmt.Fprintf(&b, "Min keyword length: %d\n", cfg.MinKeywordLength)
	fmt.Fprintf(&b, "Max keywords: %d\n", cfg.MaxKeywords)
	fmt.Fprintf(&b, "Min score: %d\n", cfg.MinScore)
	return b.String()
}
