// Package owltool wraps the external OWL merge/format/reason binary behind
// a capability interface, keeping subprocess invocation independent of the
// engine's in-memory algorithms.
package owltool

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/TTa77/PheKnowLator/errors"
	"github.com/TTa77/PheKnowLator/rdf"
)

// Formatter is the capability the engine needs from the external tool.
// Implementations promise that on success the named output file exists;
// any non-zero exit or missing output surfaces as a process error.
type Formatter interface {
	// Merge combines the input ontology files (with import closure) into
	// a single file named outName under outDir, returning its path.
	Merge(ctx context.Context, inputs []string, outDir, outName string) (string, error)

	// Format rewrites an ontology file in place into the tool's
	// canonical serialization.
	Format(ctx context.Context, path string) error

	// RemoveAnnotationAssertions strips axiom-annotation assertions from
	// the ontology, writing a sibling file with the
	// "_NoAnnotationAssertions" suffix and returning its path.
	RemoveAnnotationAssertions(ctx context.Context, path string) (string, error)
}

// OWLTools invokes an owltools-style command line binary.
type OWLTools struct {
	binary string
	logger *slog.Logger
}

// New creates an OWLTools runner after verifying the binary exists.
func New(binary string, logger *slog.Logger) (*OWLTools, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := os.Stat(binary); err != nil {
		return nil, errors.WrapNotFound(
			fmt.Errorf("%w: %s", errors.ErrToolNotFound, binary),
			"owltool", "New", "locate tool binary")
	}
	return &OWLTools{binary: binary, logger: logger}, nil
}

// Merge implements Formatter.
func (o *OWLTools) Merge(ctx context.Context, inputs []string, outDir, outName string) (string, error) {
	if len(inputs) == 0 {
		return "", errors.WrapInvalid(
			fmt.Errorf("%w: no input ontologies", errors.ErrMalformedInput),
			"owltool", "Merge", "validate inputs")
	}
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return "", errors.WrapNotFound(
				fmt.Errorf("%w: %s", errors.ErrFileNotFound, in),
				"owltool", "Merge", "locate input ontology")
		}
	}

	output := filepath.Join(outDir, outName)
	args := append(append([]string{}, inputs...), "--merge-import-closure", "-o", output)

	if err := o.run(ctx, "Merge", args); err != nil {
		return "", err
	}
	if _, err := os.Stat(output); err != nil {
		return "", errors.WrapProcess(
			fmt.Errorf("%w: %s", errors.ErrMissingOutput, output),
			"owltool", "Merge", "verify merged output")
	}
	return output, nil
}

// Format implements Formatter.
func (o *OWLTools) Format(ctx context.Context, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".owl") {
		return errors.WrapInvalid(
			fmt.Errorf("%w: not an owl file: %s", errors.ErrMalformedInput, path),
			"owltool", "Format", "validate input")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.WrapNotFound(
			fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
			"owltool", "Format", "locate ontology")
	}
	if info.Size() == 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrEmptyOntology, path),
			"owltool", "Format", "validate content")
	}
	return o.run(ctx, "Format", []string{path, "-o", path})
}

// RemoveAnnotationAssertions implements Formatter.
func (o *OWLTools) RemoveAnnotationAssertions(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errors.WrapNotFound(
			fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
			"owltool", "RemoveAnnotationAssertions", "locate ontology")
	}

	ext := filepath.Ext(path)
	output := strings.TrimSuffix(path, ext) + "_NoAnnotationAssertions" + ext
	args := []string{path, "--remove-annotation-assertions", "-o", output}

	if err := o.run(ctx, "RemoveAnnotationAssertions", args); err != nil {
		return "", err
	}
	if _, err := os.Stat(output); err != nil {
		return "", errors.WrapProcess(
			fmt.Errorf("%w: %s", errors.ErrMissingOutput, output),
			"owltool", "RemoveAnnotationAssertions", "verify stripped output")
	}
	return output, nil
}

// run executes the binary and classifies failures.
func (o *OWLTools) run(ctx context.Context, operation string, args []string) error {
	o.logger.Debug("invoking external tool",
		"binary", o.binary,
		"operation", operation,
		"args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, o.binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.WrapProcess(
			fmt.Errorf("%w: %v: %s", errors.ErrProcessFailed, err, strings.TrimSpace(string(out))),
			"owltool", operation, "run "+filepath.Base(o.binary))
	}
	return nil
}

// MergeAndLoad merges the input ontologies through the external tool and
// parses the merged file into a graph.
func MergeAndLoad(ctx context.Context, f Formatter, inputs []string, outDir, outName string) (*rdf.Graph, error) {
	merged, err := f.Merge(ctx, inputs, outDir, outName)
	if err != nil {
		return nil, err
	}
	return rdf.LoadGraph(merged)
}
