package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"plotchart/render"
)

const (
	ServerName    = "plot_chart"
	ServerVersion = "1.0.0"
)

// New builds the MCP server with the three chart tools registered.
func New(r *render.Renderer) *server.MCPServer {
	srv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	registerBarChartTool(srv, r)
	registerLineChartTool(srv, r)
	registerPieChartTool(srv, r)

	return srv
}

// chartArgs is implemented by each tool's argument struct.
type chartArgs interface {
	request() render.ChartRequest
}

type chartToolConfig struct {
	name        string
	description string
	kind        render.Kind
}

func registerChartTool[T chartArgs](srv *server.MCPServer, r *render.Renderer, cfg chartToolConfig) {
	tool := mcp.NewTool(
		cfg.name,
		mcp.WithDescription(cfg.description),
		mcp.WithInputSchema[T](),
	)

	srv.AddTool(tool, chartToolHandler[T](r, cfg.kind))
}

func chartToolHandler[T chartArgs](r *render.Renderer, kind render.Kind) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args T
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: invalid arguments: %v", err)), nil
		}

		res := r.Render(kind, args.request())
		if !res.OK() {
			return mcp.NewToolResultError(res.Message), nil
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}
