// Package mcpserver exposes a journal collection as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/rcliao/journal-archive/internal/filter"
	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/store"
)

// Server answers every tool call from the collection it was built with.
type Server struct {
	mcpServer *server.MCPServer
	entries   []model.Entry
	log       *zap.Logger
}

// New builds the server and registers its tools.
func New(entries []model.Entry, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		mcpServer: server.NewMCPServer(
			"Journal Archive MCP Server",
			version,
			server.WithLogging(),
			server.WithRecovery(),
		),
		entries: entries,
		log:     log,
	}

	listTool := mcp.NewTool("list_entries",
		mcp.WithDescription("Lists journal entries matching a keyword. Archived entries are hidden unless show_archived is set."),
		mcp.WithString("query", mcp.Description("Case-insensitive keyword matched against title, body and mood.")),
		mcp.WithBoolean("show_archived", mcp.Description("Include archived entries.")),
	)
	s.mcpServer.AddTool(listTool, s.handleListEntries)

	statsTool := mcp.NewTool("entry_stats",
		mcp.WithDescription("Counts entries: total, archived and per mood category."),
	)
	s.mcpServer.AddTool(statsTool, s.handleEntryStats)

	return s
}

// Start runs the stdio loop until stdin closes.
func (s *Server) Start() error {
	s.log.Info("mcp server started", zap.Int("entries", len(s.entries)))
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleListEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, _ := request.Params.Arguments["query"].(string)
	showArchived, _ := request.Params.Arguments["show_archived"].(bool)

	visible := filter.Apply(s.entries, filter.Params{Query: query, ShowArchived: showArchived})
	s.log.Debug("list_entries", zap.String("query", query), zap.Bool("show_archived", showArchived), zap.Int("matched", len(visible)))

	return jsonResult(visible)
}

func (s *Server) handleEntryStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(store.Summarize(s.entries))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
