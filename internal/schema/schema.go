// Package schema holds the HCL decoding targets for manifest files.
package schema

import "github.com/hashicorp/hcl/v2"

// Module represents a `module` block. Requires is kept as an expression so
// it can be evaluated with functions and converted from any sequence type.
type Module struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Requires    hcl.Expression `hcl:"requires,optional"`
}

// Bundle represents the optional `bundle` block.
type Bundle struct {
	SourceDir   *string `hcl:"source_dir,optional"`
	Extension   *string `hcl:"extension,optional"`
	HeaderLines *int    `hcl:"header_lines,optional"`
}

// File represents the top-level structure of a manifest file.
type File struct {
	Bundles []*Bundle `hcl:"bundle,block"`
	Modules []*Module `hcl:"module,block"`
	Remain  hcl.Body  `hcl:",remain"`
}
