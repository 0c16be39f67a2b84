package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"alisp/eval"
	"alisp/session"

	"github.com/mark3labs/mcp-go/server"
)

var VERSION = "dev"

func defaultDepth() int {
	if s := os.Getenv("ALISP_MCP_DEPTH"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("ALISP_MCP_DEPTH: %v", err)
		}
		return n
	}
	return eval.DefaultMaxDepth
}

func main() {
	depth := flag.Int("depth", defaultDepth(), "maximum evaluation depth per session, 0 for unbounded (env ALISP_MCP_DEPTH)")
	name := flag.String("name", "alisp", "server name reported to clients")
	flag.Parse()

	// stdout carries the protocol
	logger := log.New(os.Stderr, "alisp-mcp: ", log.LstdFlags)

	sessions := session.NewManager()
	sessions.MaxDepth = *depth
	t := &tools{sessions: sessions, logger: logger}

	s := server.NewMCPServer(
		*name,
		VERSION,
		server.WithToolCapabilities(false),
	)
	t.register(s)

	logger.Printf("serving on stdio (max depth %d)", *depth)
	if err := server.ServeStdio(s, server.WithErrorLogger(logger)); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
