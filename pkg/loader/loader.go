package loader

import "context"

// TableFile represents a single delimited file of the dataset export.
// The actual content is retrieved via the associated TableFileLoader,
// which may read from the local filesystem or from object storage.
type TableFile struct {
	// Name is the logical table name, e.g. "Company" for Company.csv.
	Name     string
	FilePath string
}

// FileInfo describes a dataset file without reading it. The bulk loader
// uses the size to skip files above its memory-safety threshold.
type FileInfo struct {
	Size int64
}

// TableFileLoader defines the interface for loading dataset files.
// Implementations may read from disk or from cloud storage.
type TableFileLoader interface {
	GetFileText(ctx context.Context, file TableFile) ([]byte, error)
	Stat(ctx context.Context, file TableFile) (FileInfo, error)
}

// CacheKey returns the cache key used by loader implementations for a file.
func CacheKey(file TableFile) string {
	return file.FilePath
}
