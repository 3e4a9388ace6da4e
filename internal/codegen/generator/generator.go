// Package generator fans a parsed model out to the language generators and
// writes their output.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Alia5/modelgen/internal/codegen/generator/golang"
	"github.com/Alia5/modelgen/internal/codegen/generator/objc"
	"github.com/Alia5/modelgen/internal/codegen/generator/swift"
	"github.com/Alia5/modelgen/internal/codegen/generator/typescript"
	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/scanner"
)

// Generator scans a schema and renders it for the requested languages.
type Generator struct {
	logger  *slog.Logger
	opts    meta.Options
	workers int
}

// LanguageGenerator renders a model into files. Implementations must not
// mutate the model; they run concurrently against the same instance.
type LanguageGenerator func(m *model.Model, opts meta.Options) ([]model.File, error)

var generators = map[string]LanguageGenerator{
	objc.Name:       objc.Generate,
	swift.Name:      swift.Generate,
	golang.Name:     golang.Generate,
	typescript.Name: typescript.Generate,
}

// DefaultLanguages reproduces the classic Objective-C plus Swift output.
var DefaultLanguages = []string{objc.Name, swift.Name}

// Output is everything one language generator produced.
type Output struct {
	Lang  string
	Files []model.File
}

// Supported returns the registered language names, sorted.
func Supported() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

// New returns a Generator. workers <= 0 uses GOMAXPROCS.
func New(logger *slog.Logger, opts meta.Options, workers int) *Generator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		logger:  logger,
		opts:    opts.WithDefaults(),
		workers: workers,
	}
}

// Scan loads the current schema version of a bundle and reports validation
// issues. Issues are returned for the caller to decide on; they are only
// logged here.
func (g *Generator) Scan(loader scanner.Loader, path string) (*model.Model, []scanner.Issue, error) {
	g.logger.Info("Scanning schema", "path", path)
	m, err := scanner.ScanBundle(loader, path)
	if err != nil {
		return nil, nil, err
	}
	g.logger.Info("Parsed schema", "entities", len(m.Entities), "attributes", len(m.Attributes()))

	issues := scanner.Validate(m)
	for _, issue := range issues {
		g.logger.Warn("Schema issue", "entity", issue.Entity, "property", issue.Property, "issue", issue.Message)
	}
	return m, issues, nil
}

// GenerateLang runs a single language generator.
func (g *Generator) GenerateLang(m *model.Model, lang string) (Output, error) {
	gen, ok := generators[lang]
	if !ok {
		return Output{}, fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Supported())
	}

	g.logger.Debug("Rendering", "language", lang)
	files, err := gen(m, g.opts)
	if err != nil {
		return Output{}, fmt.Errorf("generate %s: %w", lang, err)
	}
	g.logger.Debug("Rendered", "language", lang, "files", len(files))
	return Output{Lang: lang, Files: files}, nil
}

// Render runs the requested generators in parallel. Results keep the order of
// langs regardless of completion order; the first failure cancels the rest.
func (g *Generator) Render(ctx context.Context, m *model.Model, langs []string) ([]Output, error) {
	for _, lang := range langs {
		if _, ok := generators[lang]; !ok {
			return nil, fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Supported())
		}
	}

	outputs := make([]Output, len(langs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for i, lang := range langs {
		i, lang := i, lang
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out, err := g.GenerateLang(m, lang)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
