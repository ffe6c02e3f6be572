package step

import (
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/allpan3/mflowgen/pkg/errors"
)

// hclStep mirrors the on-disk HCL schema of a resolved step.
//
//	name    = "4-synthesis"
//	inputs  = ["design", "constraints"]
//	outputs = ["netlist"]
//	source  = "steps/synthesis"
//	sandbox = true
//
//	parameters {
//	  clock_period = 2.0
//	  flatten      = ["one", "two"]
//	}
//
//	input "design" {
//	  producer {
//	    step = "3-rtl"
//	    port = "design"
//	  }
//	}
//
//	output "netlist" {
//	  consumer {
//	    step = "5-place"
//	    port = "netlist"
//	  }
//	}
type hclStep struct {
	Name        string      `hcl:"name,optional"`
	Inputs      []string    `hcl:"inputs,optional"`
	Outputs     []string    `hcl:"outputs,optional"`
	Source      string      `hcl:"source,optional"`
	Sandbox     *bool       `hcl:"sandbox,optional"`
	Parameters  *hclParams  `hcl:"parameters,block"`
	InputPorts  []hclInput  `hcl:"input,block"`
	OutputPorts []hclOutput `hcl:"output,block"`
}

// hclParams defers parameter decoding: the block is free-form, so its
// attributes are evaluated individually into Go scalars.
type hclParams struct {
	Body hcl.Body `hcl:",remain"`
}

type hclInput struct {
	Name      string   `hcl:"name,label"`
	Producers []hclRef `hcl:"producer,block"`
}

type hclOutput struct {
	Name      string   `hcl:"name,label"`
	Consumers []hclRef `hcl:"consumer,block"`
}

type hclRef struct {
	Step string `hcl:"step"`
	Port string `hcl:"port"`
}

// loadHCL reads and decodes an HCL step configuration.
func loadHCL(path string) (*Step, error) {
	var raw hclStep
	if err := hclsimple.DecodeFile(path, nil, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}

	s := &Step{
		Name:    raw.Name,
		Inputs:  raw.Inputs,
		Outputs: raw.Outputs,
		Source:  raw.Source,
		Sandbox: raw.Sandbox,
	}

	if len(raw.InputPorts) > 0 {
		s.EdgesI = make(map[string][]Reference, len(raw.InputPorts))
		for _, p := range raw.InputPorts {
			s.EdgesI[p.Name] = convertHCLRefs(p.Producers)
		}
	}
	if len(raw.OutputPorts) > 0 {
		s.EdgesO = make(map[string][]Reference, len(raw.OutputPorts))
		for _, p := range raw.OutputPorts {
			s.EdgesO[p.Name] = convertHCLRefs(p.Consumers)
		}
	}

	if raw.Parameters != nil {
		params, err := decodeParameters(raw.Parameters.Body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing parameters in %s", path)
		}
		s.Parameters = params
	}

	return s, nil
}

func convertHCLRefs(refs []hclRef) []Reference {
	out := make([]Reference, len(refs))
	for i, r := range refs {
		out[i] = Reference{Step: r.Step, Port: r.Port}
	}
	return out
}

// decodeParameters evaluates every attribute of the parameters block into a
// Go scalar or list of scalars.
func decodeParameters(body hcl.Body) (map[string]any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	params := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, valDiags
		}
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parameter %q", name)
		}
		params[name] = goVal
	}
	return params, nil
}

// ctyToGo converts an evaluated cty value into the scalar types the listing
// printer understands: string, bool, int64, float64, or a []any of those.
func ctyToGo(val cty.Value) (any, error) {
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType():
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			goElem, err := ctyToGo(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, goElem)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported value type %s", ty.FriendlyName())
	}
}
