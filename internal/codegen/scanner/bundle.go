package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"howett.net/plist"

	"github.com/Alia5/modelgen/internal/codegen/model"
)

const (
	currentVersionFile = ".xccurrentversion"
	contentsFile       = "contents"
	versionExt         = ".xcdatamodel"
)

// Loader reads a document by path.
type Loader interface {
	Load(path string) ([]byte, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) ([]byte, error)

func (f LoaderFunc) Load(path string) ([]byte, error) { return f(path) }

// FsLoader loads documents from an afero filesystem.
type FsLoader struct {
	Fs afero.Fs
}

// NewOsLoader returns a loader backed by the real filesystem.
func NewOsLoader() FsLoader { return FsLoader{Fs: afero.NewOsFs()} }

func (l FsLoader) Load(path string) ([]byte, error) {
	return afero.ReadFile(l.Fs, path)
}

type currentVersion struct {
	Name string `plist:"_XCCurrentVersionName"`
}

// CurrentVersion reads the version selector of an .xcdatamodeld bundle and
// returns the directory name of the active version.
func CurrentVersion(l Loader, bundlePath string) (string, error) {
	selector := filepath.Join(bundlePath, currentVersionFile)
	data, err := l.Load(selector)
	if err != nil {
		return "", &model.SchemaError{Message: "no current version document at " + selector, Cause: err}
	}
	var cv currentVersion
	if _, err := plist.Unmarshal(data, &cv); err != nil {
		return "", &model.SchemaError{Message: "current version document could not be decoded", Cause: err}
	}
	if cv.Name == "" {
		return "", &model.SchemaError{Message: "current version document does not name a model version"}
	}
	return cv.Name, nil
}

// ContentsPath resolves the schema document for a bundle. A path to a single
// .xcdatamodel version is read directly; anything else is treated as an
// .xcdatamodeld bundle and goes through its version selector.
func ContentsPath(l Loader, bundlePath string) (string, error) {
	clean := strings.TrimRight(bundlePath, `/\`)
	if strings.HasSuffix(clean, versionExt) {
		return filepath.Join(clean, contentsFile), nil
	}
	version, err := CurrentVersion(l, clean)
	if err != nil {
		return "", err
	}
	return filepath.Join(clean, version, contentsFile), nil
}

// ScanBundle loads and parses the active schema version of a model bundle.
func ScanBundle(l Loader, bundlePath string) (*model.Model, error) {
	contents, err := ContentsPath(l, bundlePath)
	if err != nil {
		return nil, err
	}
	data, err := l.Load(contents)
	if err != nil {
		return nil, &model.SchemaError{Message: "could not load model version " + contents, Cause: err}
	}
	m, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", contents, err)
	}
	return m, nil
}
