package hcl

import "github.com/vk/piohook/internal/config"

// translateRule converts a decoded compile block into the agnostic model,
// filling omitted attributes from config.DefaultRule.
func translateRule(b *compileBlock) *config.Rule {
	r := config.DefaultRule()
	r.Name = b.Name

	setIfPresent(&r.SourceDir, b.SourceDir)
	setIfPresent(&r.SourceSuffix, b.SourceSuffix)
	setIfPresent(&r.OutputSuffix, b.OutputSuffix)
	setIfPresent(&r.Assembler, b.Assembler)
	setIfPresent(&r.OutputFormat, b.OutputFormat)
	if b.ExtraArgs != nil {
		r.ExtraArgs = append([]string(nil), (*b.ExtraArgs)...)
	}
	return r
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
