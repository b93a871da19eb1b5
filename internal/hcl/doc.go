// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses `piohook.hcl` (or its JSON form), evaluates attribute
// expressions against the project and process environment, and translates
// the `compile` blocks into the format-agnostic config.Model.
package hcl
