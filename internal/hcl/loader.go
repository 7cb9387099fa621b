package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/nodelaunch/internal/config"
	"github.com/specialistvlad/nodelaunch/internal/ctxlog"
	"github.com/specialistvlad/nodelaunch/internal/fsutil"
)

// Extensions lists the file extensions the loader reads.
var Extensions = []string{".hcl", ".json"}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL definition loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every definition file under paths and returns their apps in
// file order, then declaration order. An app name that appears twice, in the
// same file or across files, is rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]config.LaunchSpec, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	parser := hclparse.NewParser()
	specs := []config.LaunchSpec{}
	origin := make(map[string]string)

	for _, file := range files {
		hclFile, diags := parseFile(parser, file)
		if diags.HasErrors() {
			return nil, &config.ConfigurationError{Source: file, Err: joinMalformed(diags)}
		}

		fileSpecs, err := decode(file, hclFile.Body)
		if err != nil {
			return nil, err
		}
		for _, spec := range fileSpecs {
			if prev, dup := origin[spec.Name]; dup {
				return nil, &config.ConfigurationError{
					Source: file,
					App:    spec.Name,
					Field:  "name",
					Err:    fmt.Errorf("%w (first defined in %s)", config.ErrDuplicateApp, prev),
				}
			}
			origin[spec.Name] = file
			specs = append(specs, spec)
		}
		logger.Debug("Definition file loaded.", "file", file, "apps", len(fileSpecs))
	}

	logger.Debug("HCL loading complete.", "apps", len(specs))
	return specs, nil
}

// Parse decodes a single definition held in memory. The filename selects the
// syntax (.json for HCL JSON, anything else for native HCL) and is used in
// error messages.
func Parse(src []byte, filename string) ([]config.LaunchSpec, error) {
	parser := hclparse.NewParser()
	var (
		hclFile *hcl.File
		diags   hcl.Diagnostics
	)
	if filepath.Ext(filename) == ".json" {
		hclFile, diags = parser.ParseJSON(src, filename)
	} else {
		hclFile, diags = parser.ParseHCL(src, filename)
	}
	if diags.HasErrors() {
		return nil, &config.ConfigurationError{Source: filename, Err: joinMalformed(diags)}
	}

	specs, err := decode(filename, hclFile.Body)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.Name]; dup {
			return nil, &config.ConfigurationError{Source: filename, App: spec.Name, Field: "name", Err: config.ErrDuplicateApp}
		}
		seen[spec.Name] = struct{}{}
	}
	return specs, nil
}

func parseFile(parser *hclparse.Parser, file string) (*hcl.File, hcl.Diagnostics) {
	if filepath.Ext(file) == ".json" {
		return parser.ParseJSONFile(file)
	}
	return parser.ParseHCLFile(file)
}

// decode turns a parsed body into launch records without cross-file checks.
func decode(file string, body hcl.Body) ([]config.LaunchSpec, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, &config.ConfigurationError{Source: file, Err: joinMalformed(diags)}
	}

	specs := make([]config.LaunchSpec, 0, len(root.Apps))
	for _, app := range root.Apps {
		spec, err := translateApp(file, app)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// joinMalformed tags HCL diagnostics with config.ErrMalformed.
func joinMalformed(diags hcl.Diagnostics) error {
	return fmt.Errorf("%w: %w", config.ErrMalformed, diags)
}
