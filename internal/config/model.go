package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Defaults reproduce the behaviour of the stock PlatformIO pre-build script.
const (
	DefaultRuleName     = "pio"
	DefaultSourceDir    = "src"
	DefaultSourceSuffix = ".pio"
	DefaultOutputSuffix = ".pio.h"
	DefaultAssembler    = "pioasm"
	DefaultOutputFormat = "c-header"
)

// Model is the unified, format-agnostic representation of the hook
// configuration. Rules run in the order they appear.
type Model struct {
	Rules []*Rule
}

// Rule describes one directory scan and the assembler used for its matches.
type Rule struct {
	Name         string
	SourceDir    string // relative to the project root
	SourceSuffix string
	OutputSuffix string
	Assembler    string
	OutputFormat string
	ExtraArgs    []string
}

// DefaultRule returns a rule equal to the stock hook behaviour.
func DefaultRule() *Rule {
	return &Rule{
		Name:         DefaultRuleName,
		SourceDir:    DefaultSourceDir,
		SourceSuffix: DefaultSourceSuffix,
		OutputSuffix: DefaultOutputSuffix,
		Assembler:    DefaultAssembler,
		OutputFormat: DefaultOutputFormat,
	}
}

// DefaultModel returns the model used when no configuration file exists.
func DefaultModel() *Model {
	return &Model{Rules: []*Rule{DefaultRule()}}
}

// Validate checks each rule and the uniqueness of rule names.
func (m *Model) Validate() error {
	if len(m.Rules) == 0 {
		return errors.New("configuration defines no compile rules")
	}
	seen := make(map[string]struct{}, len(m.Rules))
	for _, r := range m.Rules {
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("duplicate compile rule %q", r.Name)
		}
		seen[r.Name] = struct{}{}
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports the first invalid field of the rule.
func (r *Rule) Validate() error {
	switch {
	case r.SourceDir == "":
		return fmt.Errorf("rule %q: source_dir must not be empty", r.Name)
	case filepath.IsAbs(r.SourceDir):
		return fmt.Errorf("rule %q: source_dir %q must be relative to the project", r.Name, r.SourceDir)
	case r.SourceSuffix == "":
		return fmt.Errorf("rule %q: source_suffix must not be empty", r.Name)
	case r.OutputSuffix == "":
		return fmt.Errorf("rule %q: output_suffix must not be empty", r.Name)
	case r.Assembler == "":
		return fmt.Errorf("rule %q: assembler must not be empty", r.Name)
	case r.OutputFormat == "":
		return fmt.Errorf("rule %q: output_format must not be empty", r.Name)
	}
	return nil
}
