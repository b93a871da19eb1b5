package hcl

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext exposes `project_dir` and `env` to configuration
// expressions, e.g. assembler = "${env.PICO_SDK_PATH}/tools/pioasm".
func newEvalContext(projectDir string, environ []string) (*hcl.EvalContext, error) {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}

	env, err := gocty.ToCtyValue(vars, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("converting environment: %w", err)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"project_dir": cty.StringVal(projectDir),
			"env":         env,
		},
	}, nil
}
