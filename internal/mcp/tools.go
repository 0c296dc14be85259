package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "feed",
		Description: "Feed a piece of text into the keyword engine. Returns the text's qualifying keywords ranked by their accumulated priority, highest first.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Free-form text to extract and rank keywords from",
				},
			},
			"required": []string{"text"},
		},
	},
	{
		Name:        "prioritize_keyword",
		Description: "Raise the priority of a single keyword by one. The boost applies regardless of keyword length; the word surfaces again through later feed calls that contain it.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The keyword to boost (case-insensitive, boundary punctuation ignored)",
				},
			},
			"required": []string{"word"},
		},
	},
	{
		Name:        "top_keywords",
		Description: "Get the highest-priority keywords accumulated in this session, ranked by score.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of keywords to return (default: configured max_keywords)",
				},
			},
		},
	},
	{
		Name:        "get_session",
		Description: "Get information about the current session: session id, engine configuration, and the number of tracked words. A changed session id means the score state was reset.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
