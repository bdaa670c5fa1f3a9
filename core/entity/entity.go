package entity

// ToolDefinition describes a registered tool to external callers.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema,omitempty"`
}

// Property returns the schema of a single named input, or nil.
func (d ToolDefinition) Property(name string) map[string]any {
	props, ok := d.InputSchema["properties"].(map[string]any)
	if !ok {
		return nil
	}
	p, _ := props[name].(map[string]any)
	return p
}

// Required lists the required input names.
func (d ToolDefinition) Required() []string {
	req, _ := d.InputSchema["required"].([]string)
	return req
}
