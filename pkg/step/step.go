// Package step defines the resolved pipeline-step record consumed by the
// diagram renderer, together with loaders for the on-disk configuration
// formats.
//
// A Step is produced once by the graph-resolution stage of a flow and is
// immutable from the renderer's point of view: no function in this package
// or in pkg/render/diagram mutates it after construction.
package step

import (
	"github.com/allpan3/mflowgen/pkg/errors"
)

// Reference identifies the remote end of an edge: the neighboring step and
// the port on that step the edge attaches to.
type Reference struct {
	Step string
	Port string
}

// Step is a resolved pipeline step: its declared ports, the precomputed
// edge maps linking it to neighboring steps, and its per-tool settings.
//
// Port iteration in any rendering follows Inputs/Outputs order, never the
// iteration order of the edge maps. Edge map keys are expected to reference
// declared ports; unmatched keys are unreachable and never rendered.
type Step struct {
	// Name identifies the step. It may embed a leading numeric ordering
	// prefix ("4-synthesis"); see ID.
	Name string

	// Inputs and Outputs are the declared port names, ordered and unique.
	Inputs  []string
	Outputs []string

	// EdgesI maps an input port name to its producers, EdgesO an output
	// port name to its consumers. Ports absent from a map have no edges.
	EdgesI map[string][]Reference
	EdgesO map[string][]Reference

	// Parameters maps a parameter name to a scalar or an ordered list of
	// scalars. Nil when the step declares no parameters.
	Parameters map[string]any

	// Sandbox reports whether the step builds in a sandbox directory.
	// Nil when the step does not set the flag.
	Sandbox *bool

	// Source is the path the step definition was taken from. Required.
	Source string
}

// Producers returns the producer references for an input port, in edge map
// order. It returns nil for ports without edges.
func (s *Step) Producers(port string) []Reference {
	return s.EdgesI[port]
}

// Consumers returns the consumer references for an output port, in edge map
// order. It returns nil for ports without edges.
func (s *Step) Consumers(port string) []Reference {
	return s.EdgesO[port]
}

// Validate checks the record against the renderer's preconditions: the
// source path is required, port names must be renderable, and port names
// must be unique within their side.
func (s *Step) Validate() error {
	if s.Source == "" {
		return errors.New(errors.ErrCodeMissingSource, "step %q has no source path", s.Name)
	}
	if err := validatePorts("input", s.Inputs); err != nil {
		return err
	}
	return validatePorts("output", s.Outputs)
}

func validatePorts(kind string, names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if err := errors.ValidateName(kind+" port", name); err != nil {
			return err
		}
		if seen[name] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate %s port %q", kind, name)
		}
		seen[name] = true
	}
	return nil
}
