package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/entity"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/pkg/logging"
)

//go:generate mockgen -source=server.go -destination=mock_executor_test.go -package=server

// Executor runs a named tool with loosely typed arguments.
type Executor interface {
	Execute(name string, args map[string]interface{}) (string, error)
}

// Args is the raw argument object of a tool call. Values stay raw until
// decoded with json.Number so integer and float literals are not conflated.
type Args = map[string]json.RawMessage

// Server exposes registered tools over the Model Context Protocol.
type Server struct {
	exec Executor
	mcp  *mcp.Server
}

// New builds a server that serves every definition in defs through exec.
func New(exec Executor, defs []entity.ToolDefinition, version string) *Server {
	s := &Server{
		exec: exec,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "factorial",
			Version: version,
		}, nil),
	}

	for _, tool := range ConvertToMCPTools(defs) {
		mcp.AddTool(s.mcp, tool, s.handler(tool.Name))
	}

	return s
}

// Run serves over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	logging.L().Info("serving MCP over stdio")
	if err := s.mcp.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return errors.Wrap(err, "mcp server")
	}
	return nil
}

func (s *Server) handler(name string) mcp.ToolHandlerFor[Args, any] {
	return func(ctx context.Context, _ *mcp.ServerSession, params *mcp.CallToolParamsFor[Args]) (*mcp.CallToolResultFor[any], error) {
		return s.call(name, params.Arguments), nil
	}
}

// call executes the tool and folds any failure into an error result, so
// clients see the validation message instead of a protocol error.
func (s *Server) call(name string, raw Args) *mcp.CallToolResultFor[any] {
	args, err := decodeArgs(raw)
	if err == nil {
		var out string
		out, err = s.exec.Execute(name, args)
		if err == nil {
			logging.L().Debug("tool call", "tool", name)
			return textResult(out, false)
		}
	}

	logging.L().Debug("tool call failed", "tool", name, "err", err)
	return textResult(err.Error(), true)
}

func decodeArgs(raw Args) (map[string]interface{}, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid tool arguments")
	}
	return tools.DecodeArgs(data)
}

func textResult(text string, isError bool) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}
