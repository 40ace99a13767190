//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
agents:
  - slug: alpha-coder
    name: Alpha Coder
    tagline: Writes code with you
    url: https://alpha.example.com
    primary_category: coding
    secondary_categories: [productivity]
    pricing_model: freemium
    pricing_details: Free tier plus $10/month.
    autonomy_level: supervised
    tags: [ide, autocomplete]
    capabilities:
      - code completion
    best_for:
      - daily coding
  - slug: gamma-scraper
    name: Gamma Scraper
    tagline: Websites into datasets
    url: https://gamma.example.com
    primary_category: data
    pricing_model: open_source
    autonomy_level: fully_autonomous
    open_source: true
    repo_url: https://github.com/example/gamma
    mcp_support: true
    mcp_config:
      command: npx
      args: ["-y", "gamma-mcp"]
      env:
        GAMMA_API_KEY: YOUR_KEY
    tags: [web-scraping]
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	a, ok := c.Get("alpha-coder")
	require.True(t, ok)
	require.Equal(t, "Alpha Coder", a.Name)
	require.Equal(t, CategoryCoding, a.PrimaryCategory)
	require.Equal(t, []Category{CategoryProductivity}, a.SecondaryCategories)
	require.Equal(t, PricingFreemium, a.PricingModel)
	require.Nil(t, a.MCPConfig)

	g, ok := c.Get("gamma-scraper")
	require.True(t, ok)
	require.True(t, g.OpenSource)
	require.True(t, g.MCPSupport)
	require.NotNil(t, g.MCPConfig)
	require.Equal(t, "npx", g.MCPConfig.Command)
	require.Equal(t, []string{"-y", "gamma-mcp"}, g.MCPConfig.Args)
	require.Equal(t, map[string]string{"GAMMA_API_KEY": "YOUR_KEY"}, g.MCPConfig.Env)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("agents: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse catalog")
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	doc := `
agents:
  - slug: broken
    name: Broken
    tagline: Missing things
    url: https://broken.example.com
    primary_category: gardening
    pricing_model: freemium
    autonomy_level: supervised
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid catalog")
	require.Contains(t, err.Error(), "unknown primary category")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read catalog")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o750))

	first := `
agents:
  - slug: alpha-coder
    name: Alpha Coder
    tagline: Writes code with you
    url: https://alpha.example.com
    primary_category: coding
    pricing_model: free
    autonomy_level: supervised
`
	second := `
agents:
  - slug: beta-scout
    name: Beta Scout
    tagline: Research on autopilot
    url: https://beta.example.com
    primary_category: research
    pricing_model: freemium
    autonomy_level: semi_autonomous
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(first), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.yml"), []byte(second), 0o600))

	c, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	// Lexical path order keeps the merged catalog reproducible.
	agents := c.Agents()
	require.Equal(t, "alpha-coder", agents[0].Slug)
	require.Equal(t, "beta-scout", agents[1].Slug)
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no catalog files")
}

func TestLoadDirDuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	doc := `
agents:
  - slug: alpha-coder
    name: Alpha Coder
    tagline: Writes code with you
    url: https://alpha.example.com
    primary_category: coding
    pricing_model: free
    autonomy_level: supervised
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(doc), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(doc), 0o600))

	_, err := LoadDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate slug")
}
