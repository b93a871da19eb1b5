package hcl

// fileRoot is the top-level structure of a configuration file. Unknown
// blocks or attributes are rejected by gohcl.
type fileRoot struct {
	Compiles []*compileBlock `hcl:"compile,block"`
}

// compileBlock is the HCL schema of a `compile "<name>" { ... }` block.
// Pointer fields distinguish an omitted attribute from an explicit value.
type compileBlock struct {
	Name         string    `hcl:"name,label"`
	SourceDir    *string   `hcl:"source_dir,optional"`
	SourceSuffix *string   `hcl:"source_suffix,optional"`
	OutputSuffix *string   `hcl:"output_suffix,optional"`
	Assembler    *string   `hcl:"assembler,optional"`
	OutputFormat *string   `hcl:"output_format,optional"`
	ExtraArgs    *[]string `hcl:"extra_args,optional"`
}
