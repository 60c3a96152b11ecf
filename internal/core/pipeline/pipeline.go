package pipeline

import (
	"strings"

	"github.com/artpar/cmdeploy/internal/core/document"
	"github.com/artpar/cmdeploy/internal/core/transform"
)

// DefaultAPIVersion is the API version used for API paths when none is given.
const DefaultAPIVersion = "10"

// Options selects the optional stages of a pipeline.
type Options struct {
	Reformat    bool
	Sort        bool
	AddAPIPaths bool
	// APIVersion is the bare version number, e.g. "10". A leading "v" is
	// accepted. Empty means DefaultAPIVersion.
	APIVersion string
}

// =============================================================================
// Pipeline
// =============================================================================

// Pipeline is an ordered list of transformers.
type Pipeline struct {
	stages []transform.Transformer
}

// New returns a pipeline running the given transformers in order.
func New(stages ...transform.Transformer) *Pipeline {
	return &Pipeline{stages: append([]transform.Transformer(nil), stages...)}
}

// Build assembles the pipeline selected by opts.
//
// Stages appear in the fixed order reformat, sort, api-paths, filter. The
// filter stage is always appended. Requesting API paths without reformatting
// fails before anything runs.
//
// Example:
//
//	p, _ := Build(Options{Reformat: true, Sort: true})
//	p.Stages() // ["reformat", "sort", "filter"]
func Build(opts Options) (*Pipeline, error) {
	if opts.AddAPIPaths && !opts.Reformat {
		return nil, &ConfigError{Option: "add-api-paths", Err: ErrAnnotateRequiresReformat}
	}

	var stages []transform.Transformer
	if opts.Reformat {
		stages = append(stages, transform.NewReformatter())
	}
	if opts.Sort {
		stages = append(stages, transform.NewSorter())
	}
	if opts.AddAPIPaths {
		stages = append(stages, transform.NewAPIPathAnnotator(apiVersion(opts.APIVersion)))
	}
	stages = append(stages, transform.NewFilter())

	return &Pipeline{stages: stages}, nil
}

// Run passes doc through every stage in order, each stage consuming the full
// output of the previous one.
func (p *Pipeline) Run(doc document.Value) document.Value {
	out := doc
	for _, stage := range p.stages {
		out = stage.Transform(out)
	}
	return out
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}

// apiVersion normalizes a version to its "v"-prefixed form.
func apiVersion(version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		version = DefaultAPIVersion
	}
	return "v" + version
}
