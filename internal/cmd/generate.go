package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/Alia5/modelgen/internal/codegen/generator"
	"github.com/Alia5/modelgen/internal/codegen/meta"
	"github.com/Alia5/modelgen/internal/codegen/model"
	"github.com/Alia5/modelgen/internal/codegen/scanner"
	"github.com/Alia5/modelgen/internal/log"
)

type Generate struct {
	File    string   `short:"f" required:"" help:"Model bundle (.xcdatamodeld) or a single version (.xcdatamodel)" type:"path" env:"MODELGEN_FILE"`
	Output  string   `short:"o" help:"Output directory; files go to <output>/generated/<lang>. Omit for a dry run" type:"path" env:"MODELGEN_OUTPUT"`
	Lang    []string `help:"Languages to generate" enum:"objc,swift,go,typescript" default:"objc,swift" env:"MODELGEN_LANG"`
	Strict  bool     `help:"Fail on dangling parent or destination entities instead of warning" env:"MODELGEN_STRICT"`
	NoClean bool     `help:"Keep files already present in the generated directory" env:"MODELGEN_NO_CLEAN"`
	Workers int      `help:"Languages rendered in parallel (0 uses GOMAXPROCS)" default:"0" env:"MODELGEN_WORKERS"`

	ObjC ObjCOptions `embed:"" prefix:"objc."`
	Go   GoOptions   `embed:"" prefix:"go."`
}

type ObjCOptions struct {
	BaseClass string `help:"Superclass of root entities" default:"JOManagedObject" env:"MODELGEN_OBJC_BASE_CLASS"`
}

type GoOptions struct {
	Package string `help:"Package clause of generated Go files" default:"model" env:"MODELGEN_GO_PACKAGE"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, dumper log.Dumper) error {
	return g.run(context.Background(), logger, dumper, afero.NewOsFs())
}

func (g *Generate) options() meta.Options {
	return meta.Options{BaseClass: g.ObjC.BaseClass, GoPackage: g.Go.Package}
}

// run performs one full regeneration. Nothing is written unless scanning and
// every requested language succeed.
func (g *Generate) run(ctx context.Context, logger *slog.Logger, dumper log.Dumper, fs afero.Fs) error {
	logger.Info("Starting model code generation", "file", g.File, "output", g.Output, "lang", g.Lang)

	gen := generator.New(logger, g.options(), g.Workers)
	m, issues, err := gen.Scan(scanner.FsLoader{Fs: fs}, g.File)
	if err != nil {
		return err
	}
	if g.Strict && len(issues) > 0 {
		return &model.SchemaError{
			Entity:   issues[0].Entity,
			Property: issues[0].Property,
			Message:  fmt.Sprintf("%d schema issue(s) with --strict, first: %s", len(issues), issues[0].Message),
		}
	}

	outputs, err := gen.Render(ctx, m, g.Lang)
	if err != nil {
		return err
	}

	var count int
	for _, out := range outputs {
		for _, f := range out.Files {
			dumper.Dump(out.Lang, f.Name, f.Lines)
		}
		count += len(out.Files)
	}

	if g.Output == "" {
		logger.Info("Dry run, no files written", "files", count)
		return nil
	}
	if _, err := gen.Write(fs, g.Output, outputs, !g.NoClean); err != nil {
		return err
	}
	logger.Info("Code generation complete", "files", count, "output", g.Output)
	return nil
}
