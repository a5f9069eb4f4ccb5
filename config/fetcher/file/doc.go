// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so every call to Fetch
// returns the same bytes for the lifetime of the application, even if the file
// changes on disk.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// With file.Optional(), a missing file is served as an empty YAML mapping so that
// a configuration tree can still be built from defaults and overrides alone.
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
