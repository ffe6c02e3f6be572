package step

import (
	"path/filepath"

	"github.com/allpan3/mflowgen/pkg/errors"
)

// Load reads a resolved step configuration from path, selecting the decoder
// by file extension (.toml or .hcl), and validates the result.
//
// Optional collections (ports, edges, parameters, the sandbox flag) may be
// absent from the file; they decode to empty substitutes and never produce
// an error. A missing source path is fatal.
func Load(path string) (*Step, error) {
	var (
		s   *Step
		err error
	)
	switch filepath.Ext(path) {
	case ".toml":
		s, err = loadTOML(path)
	case ".hcl":
		s, err = loadHCL(path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unsupported step configuration format %q (want .toml or .hcl)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
