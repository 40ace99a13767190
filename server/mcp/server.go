//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package mcp exposes the agent catalog to MCP clients, over stdio or
// streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
	"trpc.group/trpc-go/trpc-agent-catalog-go/log"
)

// Defaults reported during the MCP handshake and used for the HTTP
// transport mount point.
const (
	DefaultName = "agent-catalog"
	DefaultPath = "/mcp"

	version = "0.1.0"
)

// Server serves the catalog query tools to MCP clients. Both transport
// flavors register the same tool set over the same immutable catalog,
// so a query answers identically no matter how the client connects.
type Server struct {
	catalog *catalog.Catalog
	name    string
	version string
	path    string
}

// Option configures the Server instance.
type Option func(*Server)

// WithName overrides the server name reported in the MCP handshake.
func WithName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.name = name
		}
	}
}

// WithVersion overrides the server version reported in the MCP
// handshake.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// WithPath sets the path the streamable HTTP transport mounts on.
func WithPath(path string) Option {
	return func(s *Server) {
		if path != "" {
			s.path = path
		}
	}
}

// New builds a server over c. A nil catalog falls back to the bundled
// dataset.
func New(c *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: c,
		name:    DefaultName,
		version: version,
		path:    DefaultPath,
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// toolSpec pairs a tool definition with its handler so both transports
// register the identical set.
type toolSpec struct {
	tool    *mcp.Tool
	handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// ServeStdio runs the server on stdin/stdout until the client closes
// the stream. Logging stays on stderr; stdout belongs to the protocol.
func (s *Server) ServeStdio() error {
	srv := mcp.NewStdioServer(s.name, s.version,
		mcp.WithStdioServerLogger(mcp.GetDefaultLogger()),
	)
	for _, t := range s.tools() {
		srv.RegisterTool(t.tool, t.handler)
	}
	log.Infof("serving %d catalog agents over stdio", s.catalog.Len())
	return srv.Start()
}

// Handler returns the HTTP surface: the streamable MCP transport
// mounted on the configured path plus a health endpoint, behind
// permissive CORS for browser-based clients.
func (s *Server) Handler() http.Handler {
	srv := mcp.NewServer(s.name, s.version, mcp.WithServerPath(s.path))
	for _, t := range s.tools() {
		srv.RegisterTool(t.tool, t.handler)
	}

	router := mux.NewRouter()
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length", "Content-Type"},
	})
	router.Use(c.Handler)
	router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	router.PathPrefix(s.path).Handler(srv.HTTPHandler())
	return router
}

// ListenAndServe serves the HTTP surface on addr until the listener
// fails or the process exits.
func (s *Server) ListenAndServe(addr string) error {
	log.Infof("serving %d catalog agents on http://%s%s", s.catalog.Len(), addr, s.path)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"agents": s.catalog.Len(),
	})
}
