package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// OutputDirName is the directory created under the output path. It is owned
// by modelgen and wiped before each write unless cleaning is disabled.
const OutputDirName = "generated"

// Dir returns the directory a language's files are written to.
func Dir(outDir, lang string) string {
	return filepath.Join(outDir, OutputDirName, lang)
}

// Write stores every output file under <outDir>/generated/<lang>/, joining
// lines with "\n". It returns the written paths in output order.
func (g *Generator) Write(fs afero.Fs, outDir string, outputs []Output, clean bool) ([]string, error) {
	root := filepath.Join(outDir, OutputDirName)
	if clean {
		g.logger.Debug("Removing previous output", "dir", root)
		if err := fs.RemoveAll(root); err != nil {
			return nil, fmt.Errorf("clean %s: %w", root, err)
		}
	}

	var written []string
	for _, out := range outputs {
		dir := Dir(outDir, out.Lang)
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return written, fmt.Errorf("create %s output directory: %w", out.Lang, err)
		}
		for _, f := range out.Files {
			path := filepath.Join(dir, filepath.FromSlash(f.Name))
			if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return written, fmt.Errorf("create directory for %s: %w", f.Name, err)
			}
			if err := afero.WriteFile(fs, path, []byte(strings.Join(f.Lines, "\n")), 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
		g.logger.Info("Wrote files", "language", out.Lang, "dir", dir, "count", len(out.Files))
	}
	return written, nil
}
