//
// Tencent is pleased to support the open source community by making trpc-agent-catalog-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-catalog-go is licensed under the Apache License Version 2.0.
//
//

// Package catalog defines the agent record model and the immutable
// collection the search and comparison layers read from.
package catalog

// PricingModel classifies how an agent is monetized.
type PricingModel string

// Pricing model values.
const (
	PricingFree       PricingModel = "free"
	PricingFreemium   PricingModel = "freemium"
	PricingPaid       PricingModel = "paid"
	PricingEnterprise PricingModel = "enterprise"
	PricingOpenSource PricingModel = "open_source"
)

// Valid reports whether p is a known pricing model.
func (p PricingModel) Valid() bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPaid, PricingEnterprise, PricingOpenSource:
		return true
	}
	return false
}

// PricingModels returns every valid pricing model in display order.
func PricingModels() []PricingModel {
	return []PricingModel{PricingFree, PricingFreemium, PricingPaid, PricingEnterprise, PricingOpenSource}
}

// AutonomyLevel classifies how much supervision an agent needs while working.
type AutonomyLevel string

// Autonomy level values, from most to least supervised.
const (
	AutonomySupervised      AutonomyLevel = "supervised"
	AutonomySemiAutonomous  AutonomyLevel = "semi_autonomous"
	AutonomyFullyAutonomous AutonomyLevel = "fully_autonomous"
)

// Valid reports whether l is a known autonomy level.
func (l AutonomyLevel) Valid() bool {
	switch l {
	case AutonomySupervised, AutonomySemiAutonomous, AutonomyFullyAutonomous:
		return true
	}
	return false
}

// MCPConfig describes how to launch an agent's MCP server locally.
// Env and Description are optional; absent values stay absent through
// rendering instead of showing up as empty placeholders.
type MCPConfig struct {
	Command     string            `yaml:"command" json:"command"`
	Args        []string          `yaml:"args,omitempty" json:"args,omitempty"`
	Env         map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
}

// Agent is one catalog record describing an external AI tool or service.
// Records are loaded once and treated as read-only for the lifetime of
// the process; no component mutates an Agent after load.
type Agent struct {
	Slug                string        `yaml:"slug" json:"slug"`
	Name                string        `yaml:"name" json:"name"`
	Tagline             string        `yaml:"tagline" json:"tagline"`
	Description         string        `yaml:"description" json:"description"`
	URL                 string        `yaml:"url" json:"url"`
	PrimaryCategory     Category      `yaml:"primary_category" json:"primary_category"`
	SecondaryCategories []Category    `yaml:"secondary_categories,omitempty" json:"secondary_categories,omitempty"`
	PricingModel        PricingModel  `yaml:"pricing_model" json:"pricing_model"`
	PricingDetails      string        `yaml:"pricing_details,omitempty" json:"pricing_details,omitempty"`
	AutonomyLevel       AutonomyLevel `yaml:"autonomy_level" json:"autonomy_level"`
	OpenSource          bool          `yaml:"open_source" json:"open_source"`
	RepoURL             string        `yaml:"repo_url,omitempty" json:"repo_url,omitempty"`
	MCPSupport          bool          `yaml:"mcp_support" json:"mcp_support"`
	MCPConfig           *MCPConfig    `yaml:"mcp_config,omitempty" json:"mcp_config,omitempty"`
	Tags                []string      `yaml:"tags,omitempty" json:"tags,omitempty"`
	Capabilities        []string      `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
	BestFor             []string      `yaml:"best_for,omitempty" json:"best_for,omitempty"`
	Limitations         []string      `yaml:"limitations,omitempty" json:"limitations,omitempty"`
	NotIdealFor         []string      `yaml:"not_ideal_for,omitempty" json:"not_ideal_for,omitempty"`
	ReliabilityNotes    string        `yaml:"reliability_notes,omitempty" json:"reliability_notes,omitempty"`
	AccessMethods       []string      `yaml:"access_methods,omitempty" json:"access_methods,omitempty"`
	IntegratesWith      []string      `yaml:"integrates_with,omitempty" json:"integrates_with,omitempty"`
}
