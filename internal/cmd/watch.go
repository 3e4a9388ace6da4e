package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"github.com/Alia5/modelgen/internal/codegen/generator"
	"github.com/Alia5/modelgen/internal/log"
	"github.com/Alia5/modelgen/internal/watch"
)

type Watch struct {
	Generate `embed:""`

	Debounce time.Duration `help:"Quiet period after the last change before regenerating" default:"500ms" env:"MODELGEN_DEBOUNCE"`
}

// Run is called by Kong when the watch command is executed. It generates once
// and then again after every change until interrupted.
func (w *Watch) Run(logger *slog.Logger, dumper log.Dumper) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.watch(ctx, logger, dumper, afero.NewOsFs())
}

func (w *Watch) watch(ctx context.Context, logger *slog.Logger, dumper log.Dumper, fs afero.Fs) error {
	if err := w.checkOutput(); err != nil {
		return err
	}

	regenerate := func(ctx context.Context) error {
		return w.Generate.run(ctx, logger, dumper, fs)
	}
	if err := regenerate(ctx); err != nil {
		logger.Error("Initial generation failed", "error", err)
	}

	watcher, err := watch.New(w.File, w.Debounce, logger, regenerate)
	if err != nil {
		return err
	}
	defer watcher.Close()

	logger.Info("Watching for changes", "path", w.File, "debounce", w.Debounce)
	if err := watcher.Run(ctx); err != nil {
		return err
	}
	logger.Info("Stopped watching")
	return nil
}

// checkOutput rejects an output directory inside the watched bundle; every
// write would be seen as a change and regenerate again.
func (w *Watch) checkOutput() error {
	if w.Output == "" {
		return nil
	}
	root, err := filepath.Abs(w.File)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(filepath.Join(w.Output, generator.OutputDirName))
	if err != nil {
		return err
	}
	if out == root || strings.HasPrefix(out, root+string(filepath.Separator)) {
		return fmt.Errorf("output %s is inside the watched path %s", w.Output, w.File)
	}
	return nil
}
