package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Engine.MinKeywordLength != 4 {
		t.Errorf("expected MinKeywordLength=4, got %d", cfg.Engine.MinKeywordLength)
	}

	if cfg.Engine.MaxKeywords != 30 {
		t.Errorf("expected MaxKeywords=30, got %d", cfg.Engine.MaxKeywords)
	}

	if cfg.Engine.MinScore != 1 {
		t.Errorf("expected MinScore=1, got %d", cfg.Engine.MinScore)
	}

	if cfg.Output.Format != "table" {
		t.Errorf("expected Format=table, got %s", cfg.Output.Format)
	}

	if cfg.MCP.Transport != "stdio" {
		t.Errorf("expected Transport=stdio, got %s", cfg.MCP.Transport)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid min_keyword_length",
			modify: func(c *Config) {
				c.Engine.MinKeywordLength = 0
			},
			wantErr: true,
		},
		{
			name: "negative max_keywords",
			modify: func(c *Config) {
				c.Engine.MaxKeywords = -1
			},
			wantErr: true,
		},
		{
			name: "invalid output format",
			modify: func(c *Config) {
				c.Output.Format = "yaml"
			},
			wantErr: true,
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[engine]
min_keyword_length = 3
max_keywords = 10

[output]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Engine.MinKeywordLength != 3 {
		t.Errorf("expected MinKeywordLength=3, got %d", cfg.Engine.MinKeywordLength)
	}
	if cfg.Engine.MaxKeywords != 10 {
		t.Errorf("expected MaxKeywords=10, got %d", cfg.Engine.MaxKeywords)
	}
	// Unset fields keep their defaults.
	if cfg.Engine.MinScore != 1 {
		t.Errorf("expected MinScore default 1, got %d", cfg.Engine.MinScore)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected Format=json, got %s", cfg.Output.Format)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want defaults for missing file", err)
	}

	if cfg.Engine.MinKeywordLength != 4 {
		t.Errorf("expected default MinKeywordLength=4, got %d", cfg.Engine.MinKeywordLength)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[engine]
min_keyword_length = 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected validation error for min_keyword_length = 0")
	}
}
