package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/allpan3/mflowgen/pkg/render/diagram"
	"github.com/allpan3/mflowgen/pkg/step"
)

// runShow loads the step configuration and writes the diagram and listing
// to out as plain text.
func runShow(ctx context.Context, out io.Writer, path string, simple bool) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	logger.Debugf("Loading step configuration %s", path)
	s, err := step.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded step %q: %d inputs, %d outputs", s.Name, len(s.Inputs), len(s.Outputs))

	if _, err := fmt.Fprint(out, diagram.Render(s, diagram.Options{Simple: simple})); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, diagram.Listing(s)); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Rendered step %q", s.Name))
	return nil
}
