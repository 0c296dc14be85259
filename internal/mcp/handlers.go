package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"priorank/internal/engine"
)

func (s *Server) registerHandlers() {
	s.handlers["feed"] = s.handleFeed
	s.handlers["prioritize_keyword"] = s.handlePrioritizeKeyword
	s.handlers["top_keywords"] = s.handleTopKeywords
	s.handlers["get_session"] = s.handleGetSession
}

type feedParams struct {
	Text string `json:"text"`
}

type feedResult struct {
	Keywords     string `json:"keywords"`
	TrackedWords int    `json:"tracked_words"`
}

func (s *Server) handleFeed(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p feedParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	return feedResult{
		Keywords:     s.engine.Feed(p.Text),
		TrackedWords: s.engine.Len(),
	}, nil
}

type prioritizeParams struct {
	Word string `json:"word"`
}

type prioritizeResult struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

func (s *Server) handlePrioritizeKeyword(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p prioritizeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if err := s.engine.PrioritizeKeyword(p.Word); err != nil {
		return nil, err
	}

	score, _ := s.engine.Score(p.Word)
	return prioritizeResult{
		Word:  p.Word,
		Score: score,
	}, nil
}

type topKeywordsParams struct {
	Limit int `json:"limit"`
}

type topKeywordsResult struct {
	Keywords []engine.Keyword `json:"keywords"`
	Total    int              `json:"total"`
}

func (s *Server) handleTopKeywords(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p topKeywordsParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	return topKeywordsResult{
		Keywords: s.engine.Top(p.Limit),
		Total:    s.engine.Len(),
	}, nil
}

type sessionResult struct {
	SessionID        string `json:"session_id"`
	MinKeywordLength int    `json:"min_keyword_length"`
	MaxKeywords      int    `json:"max_keywords"`
	MinScore         int    `json:"min_score"`
	TrackedWords     int    `json:"tracked_words"`
}

func (s *Server) handleGetSession(ctx context.Context, params json.RawMessage) (interface{}, error) {
	cfg := s.engine.Config()
	return sessionResult{
		SessionID:        s.sessionID,
		MinKeywordLength: cfg.MinKeywordLength,
		MaxKeywords:      cfg.MaxKeywords,
		MinScore:         cfg.MinScore,
		TrackedWords:     s.engine.Len(),
	}, nil
}
