package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/allpan3/mflowgen/pkg/errors"
)

const stepTOML = `
name    = "4-synthesis"
inputs  = ["design"]
outputs = ["netlist"]
source  = "steps/synthesis"
sandbox = true

[parameters]
clock_period = 2.5

[edges_i]
design = [{ step = "3-rtl", port = "design" }]
`

func writeStep(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunShow(t *testing.T) {
	path := writeStep(t, "synth.toml", stepTOML)

	var out bytes.Buffer
	if err := runShow(context.Background(), &out, path, false); err != nil {
		t.Fatalf("runShow() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"|   design    |",
		"| 4-synthesis |",
		"3-rtl",
		"- clock_period : 2.5",
		"- sandbox : true",
		"Source: steps/synthesis",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunShowSimple(t *testing.T) {
	path := writeStep(t, "synth.toml", stepTOML)

	var out bytes.Buffer
	if err := runShow(context.Background(), &out, path, true); err != nil {
		t.Fatalf("runShow() error = %v", err)
	}

	got := out.String()
	if strings.Contains(got, "3-rtl") {
		t.Errorf("simple mode output carries edge labels:\n%s", got)
	}
	if !strings.Contains(got, "V") {
		t.Errorf("simple mode output missing arrow rows:\n%s", got)
	}
}

// Rendering the same configuration twice must be byte-identical.
func TestRunShowDeterministic(t *testing.T) {
	path := writeStep(t, "synth.toml", stepTOML)

	var first, second bytes.Buffer
	if err := runShow(context.Background(), &first, path, false); err != nil {
		t.Fatal(err)
	}
	if err := runShow(context.Background(), &second, path, false); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two runs produced different output")
	}
}

func TestRunShowMissingSource(t *testing.T) {
	path := writeStep(t, "nosource.toml", "name = \"4-synthesis\"\n")

	var out bytes.Buffer
	err := runShow(context.Background(), &out, path, false)
	if err == nil {
		t.Fatal("runShow() = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeMissingSource) {
		t.Errorf("runShow() code = %v, want %v", errors.CodeOf(err), errors.ErrCodeMissingSource)
	}
	if out.Len() != 0 {
		t.Errorf("output written despite fatal error: %q", out.String())
	}
}
