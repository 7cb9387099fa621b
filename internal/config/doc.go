// Package config defines the format-agnostic launch model for the
// application: the LaunchSpec record, the ConfigurationError raised when a
// definition is structurally invalid, and the Loader interface implemented by
// every definition source.
//
// A LaunchSpec is the single source of truth for the `launcher` and `app`
// packages. Concrete sources, such as the built-in ecosystem definition or
// HCL files, are provided in separate packages.
package config
