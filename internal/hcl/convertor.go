package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/nodelaunch/internal/config"
)

// envValue evaluates an env attribute into its literal string. Only string
// values are accepted; numbers and bools must be quoted so the node receives
// exactly what was written.
func envValue(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("%w: %w", config.ErrInvalidValue, diags)
	}
	if val.IsNull() {
		return "", fmt.Errorf("%w, got null", config.ErrInvalidValue)
	}
	if !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%w, got %s", config.ErrInvalidValue, val.Type().FriendlyName())
	}

	var out string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return "", fmt.Errorf("%w: %w", config.ErrInvalidValue, err)
	}
	return out, nil
}
