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
	"errors"
	"fmt"
	"strings"
)

// validate checks every record and collects all violations instead of
// stopping at the first, so a bad catalog file can be fixed in one pass.
func validate(agents []*Agent) error {
	var errs []error
	seen := make(map[string]bool, len(agents))
	for i, a := range agents {
		if a == nil {
			errs = append(errs, fmt.Errorf("agent %d: empty record", i))
			continue
		}
		name := fmt.Sprintf("agent %d", i)
		if a.Slug != "" {
			name = fmt.Sprintf("agent %q", a.Slug)
		}
		if a.Slug == "" {
			errs = append(errs, fmt.Errorf("%s: slug is required", name))
		} else if seen[a.Slug] {
			errs = append(errs, fmt.Errorf("%s: duplicate slug", name))
		}
		seen[a.Slug] = true
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", name))
		}
		if a.Tagline == "" {
			errs = append(errs, fmt.Errorf("%s: tagline is required", name))
		}
		if a.URL == "" {
			errs = append(errs, fmt.Errorf("%s: url is required", name))
		}
		if !a.PrimaryCategory.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown primary category %q", name, a.PrimaryCategory))
		}
		for _, sc := range a.SecondaryCategories {
			if !sc.Valid() {
				errs = append(errs, fmt.Errorf("%s: unknown secondary category %q", name, sc))
			}
		}
		if !a.PricingModel.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown pricing model %q", name, a.PricingModel))
		}
		if !a.AutonomyLevel.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown autonomy level %q", name, a.AutonomyLevel))
		}
		for _, tag := range a.Tags {
			if tag != strings.ToLower(tag) {
				errs = append(errs, fmt.Errorf("%s: tag %q must be lowercase", name, tag))
			}
		}
		if a.MCPConfig != nil {
			if !a.MCPSupport {
				errs = append(errs, fmt.Errorf("%s: mcp_config present but mcp_support is false", name))
			}
			if a.MCPConfig.Command == "" {
				errs = append(errs, fmt.Errorf("%s: mcp_config requires a command", name))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}
