// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package migrate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Rule configures one target component.
type Rule struct {
	// Name is the component's tag name, optionally dotted ("NavBar.Icon").
	Name string `yaml:"name"`

	// Transfer lists props that move from the outer element
	// to the new icon element when the icon does not set them itself.
	Transfer []string `yaml:"transfer"`

	// NoDefaultSize suppresses the default size on the new icon element.
	NoDefaultSize bool `yaml:"noDefaultSize"`
}

// A Config is the engine configuration.
type Config struct {
	// Package is the module that exports the new icon components.
	Package string `yaml:"package"`

	// Prefixes are stripped from legacy icon identifiers.
	// The longest matching prefix wins, whatever the order here.
	Prefixes []string `yaml:"prefixes"`

	// DefaultSize is the size given to new icon elements
	// that get no size otherwise. It must be a number.
	DefaultSize string `yaml:"defaultSize"`

	// Marker identifies the review comment. A file containing
	// Marker anywhere is not given another comment.
	Marker string `yaml:"marker"`

	// Comment is the review comment text, without the leading "//".
	// It must contain Marker.
	Comment string `yaml:"comment"`

	// Extensions lists the file name extensions the command rewrites.
	Extensions []string `yaml:"extensions"`

	// Rules lists the target components, in processing order.
	Rules []Rule `yaml:"targets"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Package:     "@scope/icon-package",
		Prefixes:    []string{"ic_basic_outline_", "ic_outline_", "ic_basic_", "ic_"},
		DefaultSize: "20",
		Marker:      "icon-migration:",
		Comment:     "icon-migration: some icon props in this file could not be migrated automatically; look for remaining string icon props.",
		Extensions:  []string{".tsx", ".jsx", ".js"},
		Rules: []Rule{
			{Name: "Button", Transfer: []string{"color"}},
			{Name: "IconButton", Transfer: []string{"color"}},
			{Name: "Chip", Transfer: []string{"color"}},
			{Name: "ListItem", Transfer: []string{"color"}},
			{Name: "NavBar.Icon", Transfer: []string{"color"}, NoDefaultSize: true},
			{Name: "TopNavigation.IconButton", Transfer: []string{"color"}, NoDefaultSize: true},
		},
	}
}

// LoadConfig returns the default configuration overlaid with the
// YAML document in data. Keys present in data replace the defaults;
// unknown keys are an error.
func LoadConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first problem with c, if any.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("config: empty package")
	}
	if _, err := strconv.ParseFloat(c.DefaultSize, 64); err != nil {
		return fmt.Errorf("config: defaultSize %q is not a number", c.DefaultSize)
	}
	if c.Marker == "" {
		return fmt.Errorf("config: empty marker")
	}
	if !strings.Contains(c.Comment, c.Marker) {
		return fmt.Errorf("config: comment %q does not contain marker %q", c.Comment, c.Marker)
	}
	if strings.ContainsAny(c.Comment, "\r\n") {
		return fmt.Errorf("config: comment must be a single line")
	}
	if len(c.Rules) == 0 {
		return fmt.Errorf("config: no targets")
	}
	seen := make(map[string]bool)
	for _, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("config: target with empty name")
		}
		if seen[r.Name] {
			return fmt.Errorf("config: duplicate target %s", r.Name)
		}
		seen[r.Name] = true
		for _, p := range r.Transfer {
			if p == "" || p == "icon" {
				return fmt.Errorf("config: target %s: cannot transfer %q", r.Name, p)
			}
		}
	}
	return nil
}

// Rule returns the rule for the component name, or nil.
func (c *Config) Rule(name string) *Rule {
	for i := range c.Rules {
		if c.Rules[i].Name == name {
			return &c.Rules[i]
		}
	}
	return nil
}

// HasExtension reports whether files named name should be rewritten.
func (c *Config) HasExtension(name string) bool {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
