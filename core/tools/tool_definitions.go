package tools

import (
	"github.com/vadiminshakov/factorial/core/entity"
)

func init() {
	registerBuiltins()
}

func registerBuiltins() {
	Register("factorial", factorialTool)
	Register("factorial_table", factorialTable)
	Register("calc", calc)
	Register("session_stats", getSessionStateAsJSON)
	Register("reset_session", resetSession)
}

// GetToolDescriptions returns tool definitions
//
//nolint:lll
func GetToolDescriptions() []entity.ToolDefinition {
	toolDesc := map[string]string{
		"factorial":       "Compute n! exactly for a non-negative integer n. Example: {\"n\": 20}. Floats such as 3.0 and strings are rejected",
		"factorial_table": "Compute from! through to! inclusive, one line per value. Example: {\"from\": 0, \"to\": 10}",
		"calc":            "Evaluate an exact arithmetic expression with + - * / and factorial(x). Example: {\"expr\": \"factorial(20)/factorial(18)\"}",
		"session_stats":   "Show tool usage counters for the current session as JSON. No parameters needed",
		"reset_session":   "Reset the session usage counters",
	}

	var defs []entity.ToolDefinition

	for _, name := range List() {
		desc, ok := toolDesc[name]
		if !ok {
			desc = "Internal tool " + name
		}

		schema := map[string]any{
			"type": "object",
		}

		switch name {
		case "factorial":
			schema["properties"] = map[string]any{
				"n": map[string]any{"type": "integer", "minimum": 0, "description": "non-negative integer; 3.0 and \"3\" are rejected"},
			}
			schema["required"] = []string{"n"}

		case "factorial_table":
			schema["properties"] = map[string]any{
				"from": map[string]any{"type": "integer", "minimum": 0, "description": "first n of the table"},
				"to":   map[string]any{"type": "integer", "minimum": 0, "description": "last n of the table, inclusive"},
			}
			schema["required"] = []string{"from", "to"}

		case "calc":
			schema["properties"] = map[string]any{
				"expr": map[string]any{"type": "string", "description": "expression such as 2*factorial(10)"},
			}
			schema["required"] = []string{"expr"}
		}

		defs = append(defs, entity.ToolDefinition{
			Name:        name,
			Description: desc,
			InputSchema: schema,
		})
	}

	return defs
}
