package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/piohook/internal/config"
	"github.com/vk/piohook/internal/ctxlog"
)

// DefaultFileName is looked up in the project root when no path is given.
const DefaultFileName = "piohook.hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the `env` variable. Defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

// Load implements config.Loader. A missing default file yields
// config.DefaultModel; a missing explicit file is an error.
func (l *Loader) Load(ctx context.Context, projectDir, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(projectDir, DefaultFileName)
	}
	logger.Debug("HCL loader started.", "path", path, "explicit", explicit)

	src, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("No config file found, using defaults.", "path", path)
			return config.DefaultModel(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	var file *hcl.File
	var diags hcl.Diagnostics
	if filepath.Ext(path) == ".json" {
		file, diags = parser.ParseJSON(src, path)
	} else {
		file, diags = parser.ParseHCL(src, path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	environ := os.Environ
	if l.Environ != nil {
		environ = l.Environ
	}
	evalCtx, err := newEvalContext(projectDir, environ())
	if err != nil {
		return nil, err
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	model := &config.Model{}
	for _, block := range root.Compiles {
		model.Rules = append(model.Rules, translateRule(block))
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "rules", len(model.Rules))
	return model, nil
}
