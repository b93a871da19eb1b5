// Package config defines the format-agnostic configuration model for the
// hook, along with the Loader interface implemented by concrete formats.
//
// The `config.Model` is the single source of truth for the `app` and
// `pioasm` packages. The HCL implementation lives in the `hcl` package.
package config
