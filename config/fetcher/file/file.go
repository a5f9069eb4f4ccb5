package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// emptyDocument is served for an optional file that does not exist: a YAML mapping with no keys,
// which parses into an empty tree.
var emptyDocument = []byte("{}\n") //nolint:gochecknoglobals // read-only

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
	missing  bool
}

// Option configures a Fetcher.
type Option func(*options)

type options struct {
	optional bool
}

// Optional makes a missing file behave like an empty mapping instead of failing construction.
// Other errors, such as permission problems or a directory path, are still returned.
func Optional() Option {
	return func(o *options) {
		o.optional = true
	}
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string, opts ...Option) func() (*Fetcher, error) {
	var cfg options

	for _, apply := range opts {
		apply(&cfg)
	}

	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			if cfg.optional && errors.Is(err, fs.ErrNotExist) {
				slog.Debug("optional configuration file not found", slog.String("path", cleanPath))

				return &Fetcher{filepath: cleanPath, data: emptyDocument, missing: true}, nil
			}

			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path the Fetcher was constructed with.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Missing reports whether the file was optional and absent at construction time.
func (f *Fetcher) Missing() bool {
	return f.missing
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
