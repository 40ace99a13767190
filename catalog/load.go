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
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// catalogFile mirrors the YAML document layout: a single top-level
// "agents" list.
type catalogFile struct {
	Agents []*Agent `yaml:"agents"`
}

// Load parses and validates a YAML catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

// LoadFile parses and validates the YAML catalog document at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadDir loads every *.yaml and *.yml file under dir, recursively, and
// builds one catalog from all of them. Files merge in lexical path order
// so the combined catalog order is reproducible. Slugs must stay unique
// across files.
func LoadDir(dir string) (*Catalog, error) {
	fsys := os.DirFS(dir)
	var paths []string
	for _, pattern := range []string{"**/*.yaml", "**/*.yml"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s under %s: %w", pattern, dir, err)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files (*.yaml, *.yml) under %s", dir)
	}
	sort.Strings(paths)

	var agents []*Agent
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var f catalogFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		agents = append(agents, f.Agents...)
	}
	return New(agents)
}

func parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Agents)
}
