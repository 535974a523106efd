package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/modbundle/internal/config"
	"github.com/specialistvlad/modbundle/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// newEvalContext returns the evaluation context for manifest expressions.
// No variables are defined; only the list helpers are exposed.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"concat":   stdlib.ConcatFunc,
			"distinct": stdlib.DistinctFunc,
		},
	}
}

// translateModule converts the HCL-specific module schema into the agnostic model.
func translateModule(m *schema.Module, evalCtx *hcl.EvalContext) (*config.ModuleDefinition, error) {
	requires, diags := evalRequires(m.Requires, evalCtx)
	if diags.HasErrors() {
		return nil, fmt.Errorf("module %q: %w", m.Name, diags)
	}
	return &config.ModuleDefinition{
		Name:        m.Name,
		Description: m.Description,
		Requires:    requires,
	}, nil
}

// translateBundle converts the HCL-specific bundle schema into the agnostic model.
func translateBundle(b *schema.Bundle) *config.BundleSettings {
	return &config.BundleSettings{
		SourceDir:   b.SourceDir,
		Extension:   b.Extension,
		HeaderLines: b.HeaderLines,
	}
}

// evalRequires evaluates a `requires` expression into a list of names. An
// absent or null attribute means no dependencies.
func evalRequires(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid requires",
			Detail:   "The requires value must be known when the manifest is loaded.",
			Subject:  expr.Range().Ptr(),
		}}
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid requires",
			Detail:   fmt.Sprintf("The requires value must be a list of module names: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}

	var names []string
	if err := gocty.FromCtyValue(listVal, &names); err != nil {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid requires",
			Detail:   fmt.Sprintf("The requires value could not be read: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return names, nil
}
