package step

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/allpan3/mflowgen/pkg/errors"
)

// tomlStep mirrors the on-disk TOML schema of a resolved step.
//
//	name    = "4-synthesis"
//	inputs  = ["design", "constraints"]
//	outputs = ["netlist"]
//	source  = "steps/synthesis"
//	sandbox = true
//
//	[parameters]
//	clock_period = 2.0
//	flatten      = ["one", "two"]
//
//	[edges_i]
//	design = [{ step = "3-rtl", port = "design" }]
//
//	[edges_o]
//	netlist = [{ step = "5-place", port = "netlist" }]
type tomlStep struct {
	Name       string               `toml:"name"`
	Inputs     []string             `toml:"inputs"`
	Outputs    []string             `toml:"outputs"`
	Source     string               `toml:"source"`
	Sandbox    *bool                `toml:"sandbox"`
	Parameters map[string]any       `toml:"parameters"`
	EdgesI     map[string][]tomlRef `toml:"edges_i"`
	EdgesO     map[string][]tomlRef `toml:"edges_o"`
}

type tomlRef struct {
	Step string `toml:"step"`
	Port string `toml:"port"`
}

// loadTOML reads and decodes a TOML step configuration.
func loadTOML(path string) (*Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "step configuration %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading %s", path)
	}

	var raw tomlStep
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}

	return &Step{
		Name:       raw.Name,
		Inputs:     raw.Inputs,
		Outputs:    raw.Outputs,
		Source:     raw.Source,
		Sandbox:    raw.Sandbox,
		Parameters: raw.Parameters,
		EdgesI:     convertRefs(raw.EdgesI),
		EdgesO:     convertRefs(raw.EdgesO),
	}, nil
}

// convertRefs maps the raw TOML edge tables onto the step edge maps,
// preserving per-port list order. Absent maps stay nil so the renderer
// substitutes its empty-collection default.
func convertRefs(raw map[string][]tomlRef) map[string][]Reference {
	if raw == nil {
		return nil
	}
	out := make(map[string][]Reference, len(raw))
	for port, refs := range raw {
		converted := make([]Reference, len(refs))
		for i, r := range refs {
			converted[i] = Reference{Step: r.Step, Port: r.Port}
		}
		out[port] = converted
	}
	return out
}
