package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertCompiled checks the text log output for the per-invocation line
// naming source. It hides the exact log layout from tests.
func AssertCompiled(t *testing.T, logOutput, source string) {
	t.Helper()

	for _, line := range strings.Split(logOutput, "\n") {
		if strings.Contains(line, "Compiling PIO") && strings.Contains(line, source) {
			return
		}
	}
	require.Fail(t, "missing compile log line", "expected a 'Compiling PIO' log line for %s", source)
}
