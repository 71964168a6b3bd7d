package dataset

import (
	"context"
	"fmt"
	"path"

	"vantage/pkg/loader"
	"vantage/pkg/logger"
)

// DefaultMaxFileSize is the threshold above which dataset files are
// skipped during bulk loading. Relationship tables in large exports can
// reach hundreds of megabytes; analyses that need them should load them
// explicitly instead.
const DefaultMaxFileSize = 50 * 1024 * 1024

// LoadParams configures a bulk load of dataset files.
//
// Files lists the logical table names to load; each maps to <name>.csv
// under Dir. Missing files are skipped with a warning, as are files
// larger than MaxFileSize. A parse failure aborts the load.
type LoadParams struct {
	Loader      loader.TableFileLoader
	Dir         string
	Files       []string
	MaxFileSize int64
	Comma       rune
}

// Load reads and parses the requested dataset files into a Store.
func Load(ctx context.Context, params LoadParams) (*Store, error) {
	maxSize := params.MaxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}
	comma := params.Comma
	if comma == 0 {
		comma = ','
	}

	store := &Store{tables: make(map[string]*Table, len(params.Files))}

	for _, name := range params.Files {
		file := loader.TableFile{
			Name:     name,
			FilePath: path.Join(params.Dir, name+".csv"),
		}

		info, err := params.Loader.Stat(ctx, file)
		if err != nil {
			logger.Warn("table file not found, skipping", "table", name, "path", file.FilePath)
			continue
		}
		if info.Size > maxSize {
			logger.Warn("table file exceeds size limit, skipping",
				"table", name,
				"size", info.Size,
				"limit", maxSize,
			)
			continue
		}

		text, err := params.Loader.GetFileText(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file.FilePath, err)
		}

		table, err := ParseTable(name, text, comma)
		if err != nil {
			return nil, err
		}

		store.add(table)
		logger.Debug("loaded table", "table", name, "rows", table.Len(), "columns", len(table.Header))
	}

	logger.Info("dataset loaded", "tables", len(store.tables), "requested", len(params.Files))

	return store, nil
}
