package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a definition file.
type fileRoot struct {
	Apps []*appBlock `hcl:"app,block"`
}

// appBlock is the HCL shape of a single launch record.
type appBlock struct {
	Name   string      `hcl:"name,label"`
	Script string      `hcl:"script,optional"`
	Env    []*envBlock `hcl:"env,block"`
}

// envBlock holds arbitrary attributes; each one is an environment variable.
type envBlock struct {
	Body hcl.Body `hcl:",remain"`
}
