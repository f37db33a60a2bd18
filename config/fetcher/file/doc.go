// Package file provides a file-backed config.DataFetcher.
//
// The file is read once when the constructor runs, so a run resolves every
// document against the same snapshot even if the file changes on disk.
//
//	fetcher, err := file.NewFetcher("docs/architecture/ec2_backend.yaml")()
//	if err != nil {
//	    // missing file, permission denied, path is a directory
//	}
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
