package pioasm

import (
	"path/filepath"
	"strings"

	"github.com/vk/piohook/internal/config"
)

// OutputPath returns the generated artifact path for the entry name found in
// dir. Every occurrence of srcSuffix in name is replaced, not only the
// trailing one: "a.pio.pio" becomes "a.pio.h.pio.h".
func OutputPath(dir, name, srcSuffix, outSuffix string) string {
	return filepath.Join(dir, strings.ReplaceAll(name, srcSuffix, outSuffix))
}

// Command returns the assembler argument vector for one source asset.
func Command(rule *config.Rule, source, output string) []string {
	argv := make([]string, 0, 5+len(rule.ExtraArgs))
	argv = append(argv, rule.Assembler, "-o", rule.OutputFormat)
	argv = append(argv, rule.ExtraArgs...)
	return append(argv, source, output)
}
