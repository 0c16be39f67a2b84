package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"alisp/session"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// tools serves the alisp_* tools over one session manager.
type tools struct {
	sessions *session.Manager
	logger   *log.Logger
}

// sessionID picks the session named in the request, or the default one.
func (t *tools) sessionID(request mcp.CallToolRequest) string {
	if id := request.GetString("session", ""); id != "" {
		return id
	}
	return t.sessions.Default()
}

func (t *tools) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := t.sessions.Eval(t.sessionID(request), expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (t *tools) handleSessionNew(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := t.sessions.New()
	t.logger.Printf("session %s opened (%d open)", id, t.sessions.Len())
	return mcp.NewToolResultText(id), nil
}

func (t *tools) handleSessionClose(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("session")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := t.sessions.Close(id); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t.logger.Printf("session %s closed (%d open)", id, t.sessions.Len())
	return mcp.NewToolResultText("closed " + id), nil
}

func (t *tools) handleEnv(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := t.sessions.Names(t.sessionID(request))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal names: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (t *tools) register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("alisp_eval",
			mcp.WithDescription("Evaluate a line of alisp. Returns the printed result; language errors print as `error: ...`."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Expression to evaluate, e.g. (+ 1 2) or def {x} 10"),
			),
			mcp.WithString("session",
				mcp.Description("Session id from alisp_session_new; the shared default session if omitted"),
			),
		),
		t.handleEval,
	)

	s.AddTool(
		mcp.NewTool("alisp_session_new",
			mcp.WithDescription("Create a session with its own global environment. Returns the session id."),
		),
		t.handleSessionNew,
	)

	s.AddTool(
		mcp.NewTool("alisp_session_close",
			mcp.WithDescription("Discard a session and everything defined in it."),
			mcp.WithString("session",
				mcp.Required(),
				mcp.Description("Session id to close"),
			),
		),
		t.handleSessionClose,
	)

	s.AddTool(
		mcp.NewTool("alisp_env",
			mcp.WithDescription("List the names bound in a session's global environment, builtins included."),
			mcp.WithString("session",
				mcp.Description("Session id; the shared default session if omitted"),
			),
		),
		t.handleEnv,
	)
}
