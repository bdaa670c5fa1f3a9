package server

import (
	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vadiminshakov/factorial/core/entity"
)

// ConvertToMCPTools converts our ToolDefinition to MCP tools.
// Property types are omitted so that values such as 3.0 reach the tools' own
// type checks.
func ConvertToMCPTools(tools []entity.ToolDefinition) []*mcp.Tool {
	mcpTools := make([]*mcp.Tool, len(tools))

	for i, tool := range tools {
		inputSchema := &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		}

		props, _ := tool.InputSchema["properties"].(map[string]any)
		for name := range props {
			desc, _ := tool.Property(name)["description"].(string)
			inputSchema.Properties[name] = &jsonschema.Schema{Description: desc}
		}
		inputSchema.Required = tool.Required()

		mcpTools[i] = &mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: inputSchema,
		}
	}

	return mcpTools
}
