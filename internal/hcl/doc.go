// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for locating manifest files, parsing them,
// and translating `module` and `bundle` blocks into the config model.
//
// A manifest looks like:
//
//	bundle {
//	  source_dir   = "src"
//	  extension    = ".js"
//	  header_lines = 13
//	}
//
//	module "hmac" {
//	  requires = ["byte_array"]
//	}
//
// The `requires` attribute is an expression. Any sequence of strings is
// accepted (tuple, list or set), and the concat and distinct functions are
// available for building it.
package hcl
