//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"trpc.group/trpc-go/trpc-agent-catalog-go/catalog"
	"trpc.group/trpc-go/trpc-agent-catalog-go/compare"
	"trpc.group/trpc-go/trpc-agent-catalog-go/log"
	"trpc.group/trpc-go/trpc-agent-catalog-go/render"
	"trpc.group/trpc-go/trpc-agent-catalog-go/search"
	"trpc.group/trpc-go/trpc-agent-catalog-go/telemetry"
)

// Tool names as MCP clients see them.
const (
	toolSearchAgents   = "search_agents"
	toolGetAgent       = "get_agent"
	toolListCategories = "list_categories"
	toolCompareAgents  = "compare_agents"
	toolListMCPAgents  = "list_mcp_agents"
)

// Input bounds enforced before any query touches the catalog.
const (
	minQueryLen = 2
	maxQueryLen = 500

	maxSuggestions = 3
)

// compareInput describes compare_agents arguments for schema
// generation.
type compareInput struct {
	Slugs []string `json:"slugs" jsonschema:"required,description=Two to five agent slugs to compare"`
}

func (s *Server) tools() []toolSpec {
	return []toolSpec{
		{
			tool: mcp.NewTool(toolSearchAgents,
				mcp.WithDescription("Search the agent catalog with a free-text query and get ranked matches. "+
					"Optional filters narrow the pool before ranking."),
				mcp.WithString("query", mcp.Required(),
					mcp.Description("What the agent should do, e.g. \"scrape websites\"")),
				mcp.WithString("category",
					mcp.Description("Only agents in this category (primary or secondary)"),
					mcp.Enum(categoryKeys()...)),
				mcp.WithString("pricing",
					mcp.Description("Only agents with this pricing model"),
					mcp.Enum(pricingKeys()...)),
				mcp.WithNumber("limit",
					mcp.Description(fmt.Sprintf("Maximum results, %d to %d (default %d)",
						search.MinLimit, search.MaxLimit, search.DefaultLimit))),
			),
			handler: s.handleSearchAgents,
		},
		{
			tool: mcp.NewTool(toolGetAgent,
				mcp.WithDescription("Fetch the full profile of one agent by slug. "+
					"A near-miss slug returns close catalog entries instead."),
				mcp.WithString("slug", mcp.Required(),
					mcp.Description("Agent slug, e.g. \"cursor\"")),
			),
			handler: s.handleGetAgent,
		},
		{
			tool: mcp.NewTool(toolListCategories,
				mcp.WithDescription("List every catalog category with its agent count."),
			),
			handler: s.handleListCategories,
		},
		{
			tool: mcp.NewTool(toolCompareAgents,
				mcp.WithDescription("Compare two to five agents side by side, with quick picks for "+
					"budget, autonomy, and MCP readiness."),
				mcp.WithInputStruct[compareInput](),
			),
			handler: s.handleCompareAgents,
		},
		{
			tool: mcp.NewTool(toolListMCPAgents,
				mcp.WithDescription("List the agents that ship a ready-to-use MCP launch configuration."),
			),
			handler: s.handleListMCPAgents,
		},
	}
}

func (s *Server) handleSearchAgents(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	call := uuid.NewString()

	query := strings.TrimSpace(stringArg(req, "query"))
	if n := utf8.RuneCountInString(query); n < minQueryLen || n > maxQueryLen {
		return s.reject(ctx, toolSearchAgents, call, start,
			fmt.Sprintf("query must be between %d and %d characters", minQueryLen, maxQueryLen))
	}
	limit, err := limitArg(req)
	if err != nil {
		return s.reject(ctx, toolSearchAgents, call, start, err.Error())
	}
	category := stringArg(req, "category")
	pricing := stringArg(req, "pricing")

	matches := search.Rank(search.Filter(s.catalog.Agents(), category, pricing), query, limit)

	outcome := telemetry.OutcomeOK
	if len(matches) == 0 {
		outcome = telemetry.OutcomeMiss
	}
	s.done(ctx, toolSearchAgents, call, start, outcome)
	return mcp.NewTextResult(render.RankedList(query, matches)), nil
}

func (s *Server) handleGetAgent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	call := uuid.NewString()

	slug := strings.TrimSpace(stringArg(req, "slug"))
	if slug == "" {
		return s.reject(ctx, toolGetAgent, call, start, "slug must not be empty")
	}

	if a, ok := s.catalog.Get(slug); ok {
		s.done(ctx, toolGetAgent, call, start, telemetry.OutcomeOK)
		return mcp.NewTextResult(render.Profile(a)), nil
	}

	suggestions := s.catalog.Suggest(slug, maxSuggestions)
	s.done(ctx, toolGetAgent, call, start, telemetry.OutcomeMiss)
	return mcp.NewTextResult(render.NotFound(slug, suggestions)), nil
}

func (s *Server) handleListCategories(ctx context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	call := uuid.NewString()

	out := render.CategoryList(s.catalog.CountByCategory())
	s.done(ctx, toolListCategories, call, start, telemetry.OutcomeOK)
	return mcp.NewTextResult(out), nil
}

func (s *Server) handleCompareAgents(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	call := uuid.NewString()

	slugs, err := slugsArg(req)
	if err != nil {
		return s.reject(ctx, toolCompareAgents, call, start, err.Error())
	}

	cmp, err := compare.Compare(s.catalog, slugs)
	if err != nil {
		var unresolved *compare.UnresolvedError
		if errors.As(err, &unresolved) {
			// Unknown slugs are a catalog miss, not a protocol failure.
			s.done(ctx, toolCompareAgents, call, start, telemetry.OutcomeMiss)
			return mcp.NewTextResult(render.Unresolved(unresolved.Slugs)), nil
		}
		return s.reject(ctx, toolCompareAgents, call, start, err.Error())
	}

	s.done(ctx, toolCompareAgents, call, start, telemetry.OutcomeOK)
	return mcp.NewTextResult(render.Comparison(cmp)), nil
}

func (s *Server) handleListMCPAgents(ctx context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	call := uuid.NewString()

	agents := s.catalog.MCPEnabled()
	outcome := telemetry.OutcomeOK
	if len(agents) == 0 {
		outcome = telemetry.OutcomeMiss
	}
	s.done(ctx, toolListMCPAgents, call, start, outcome)
	return mcp.NewTextResult(render.MCPList(agents)), nil
}

// reject logs a validation failure and returns it as a tool error
// result, keeping the protocol exchange itself successful.
func (s *Server) reject(ctx context.Context, tool, call string, start time.Time, msg string) (*mcp.CallToolResult, error) {
	log.Warnf("tool %s call %s rejected: %s", tool, call, msg)
	telemetry.ReportToolCall(ctx, tool, telemetry.OutcomeInvalidArgument, time.Since(start))
	return mcp.NewErrorResult(msg), nil
}

func (s *Server) done(ctx context.Context, tool, call string, start time.Time, outcome string) {
	elapsed := time.Since(start)
	log.Debugf("tool %s call %s finished in %s (%s)", tool, call, elapsed, outcome)
	telemetry.ReportToolCall(ctx, tool, outcome, elapsed)
}

func stringArg(req *mcp.CallToolRequest, key string) string {
	v, _ := req.Params.Arguments[key].(string)
	return v
}

// limitArg resolves the optional limit argument. JSON numbers arrive as
// float64; whole-number checking keeps a fractional limit from being
// silently truncated.
func limitArg(req *mcp.CallToolRequest) (int, error) {
	raw, ok := req.Params.Arguments["limit"]
	if !ok || raw == nil {
		return search.DefaultLimit, nil
	}
	var limit int
	switch v := raw.(type) {
	case float64:
		limit = int(v)
		if v != float64(limit) {
			return 0, fmt.Errorf("limit must be a whole number")
		}
	case int:
		limit = v
	default:
		return 0, fmt.Errorf("limit must be a number")
	}
	if limit < search.MinLimit || limit > search.MaxLimit {
		return 0, fmt.Errorf("limit must be between %d and %d", search.MinLimit, search.MaxLimit)
	}
	return limit, nil
}

func slugsArg(req *mcp.CallToolRequest) ([]string, error) {
	raw, ok := req.Params.Arguments["slugs"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("slugs is required")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("slugs must be an array of strings")
	}
	if len(items) < compare.MinAgents || len(items) > compare.MaxAgents {
		return nil, fmt.Errorf("slugs must list between %d and %d agents", compare.MinAgents, compare.MaxAgents)
	}
	slugs := make([]string, 0, len(items))
	for _, it := range items {
		slug, ok := it.(string)
		if !ok {
			return nil, fmt.Errorf("slugs must be an array of strings")
		}
		slug = strings.TrimSpace(slug)
		if slug == "" {
			return nil, fmt.Errorf("slugs must not contain empty entries")
		}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

func categoryKeys() []string {
	cats := catalog.Categories()
	keys := make([]string, 0, len(cats))
	for _, c := range cats {
		keys = append(keys, string(c))
	}
	return keys
}

func pricingKeys() []string {
	models := catalog.PricingModels()
	keys := make([]string, 0, len(models))
	for _, m := range models {
		keys = append(keys, string(m))
	}
	return keys
}
