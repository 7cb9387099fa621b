package hcl

import (
	"errors"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/specialistvlad/nodelaunch/internal/config"
)

// translateApp converts the HCL-specific app block into a LaunchSpec. Env
// blocks are applied in source order.
func translateApp(file string, a *appBlock) (config.LaunchSpec, error) {
	spec := config.LaunchSpec{
		Command: a.Script,
		Name:    a.Name,
		Env:     make(map[string]string),
	}

	for _, block := range a.Env {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return config.LaunchSpec{}, &config.ConfigurationError{Source: file, App: a.Name, Field: "env", Err: joinMalformed(diags)}
		}

		for _, attr := range sortedAttributes(attrs) {
			value, err := envValue(attr)
			if err != nil {
				return config.LaunchSpec{}, &config.ConfigurationError{Source: file, App: a.Name, Field: "env." + attr.Name, Err: err}
			}
			spec.Env[attr.Name] = value
		}
	}

	if err := spec.Validate(); err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			return config.LaunchSpec{}, cfgErr.WithSource(file)
		}
		return config.LaunchSpec{}, err
	}
	return spec, nil
}

// sortedAttributes orders attributes by their position in the source.
func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	slices.SortFunc(out, func(a, b *hcl.Attribute) int {
		if a.Range.Start.Byte != b.Range.Start.Byte {
			return a.Range.Start.Byte - b.Range.Start.Byte
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
