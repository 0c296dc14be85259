package config

import "priorank/internal/engine"

// Config represents the application configuration
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Output OutputConfig `toml:"output"`
	MCP    MCPConfig    `toml:"mcp"`
}

// EngineConfig contains keyword engine settings
type EngineConfig struct {
	MinKeywordLength int `toml:"min_keyword_length"`
	MaxKeywords      int `toml:"max_keywords"`
	MinScore         int `toml:"min_score"`
}

// OutputConfig contains rendering settings
type OutputConfig struct {
	Format string `toml:"format"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// EngineConfig converts the engine section into the engine library's
// own configuration type.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		MinKeywordLength: c.Engine.MinKeywordLength,
		MaxKeywords:      c.Engine.MaxKeywords,
		MinScore:         c.Engine.MinScore,
	}
}

// Default returns a Config with sensible defaults
func Default() *Config {
	engineDefaults := engine.DefaultConfig()
	return &Config{
		Engine: EngineConfig{
			MinKeywordLength: engineDefaults.MinKeywordLength,
			MaxKeywords:      engineDefaults.MaxKeywords,
			MinScore:         engineDefaults.MinScore,
		},
		Output: OutputConfig{
			Format: "table",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
