// pkg/status/reader.go
package status

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// ReadStatus loads the dpkg status database at path. The database is
// the one input the tool cannot run without, so every failure is
// returned to the caller.
func ReadStatus(path string) (Records, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	slog.Debug("reading dpkg status database", "path", path)
	records, err := ParseStatus(f, path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded installed packages", "path", path, "count", len(records))

	return records, nil
}

// ReadExtendedStates loads apt's extended_states database at path. apt
// only creates the file once it has flagged a package, so a missing or
// unreadable database is not fatal: the caller gets an empty table and
// every installed package counts as manually installed.
func ReadExtendedStates(path string) AutoFlags {
	f, err := openFile(path)
	if err != nil {
		slog.Warn("could not read extended states, assuming all packages were manually installed",
			"path", path, "error", err)
		return AutoFlags{}
	}
	defer f.Close()

	slog.Debug("reading apt extended states", "path", path)
	flags, err := ParseExtendedStates(f, path)
	if err != nil {
		slog.Warn("could not read extended states, assuming all packages were manually installed",
			"path", path, "error", err)
		return AutoFlags{}
	}
	slog.Debug("loaded auto-installed flags", "path", path, "count", len(flags))

	return flags
}

// openFile opens path, transparently decompressing rotated database
// snapshots. dpkg keeps gzipped copies of the status file under
// /var/backups, and recompressed .xz and .zst snapshots turn up often
// enough to be worth accepting too.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &snapshotReader{r: gz, closers: []io.Closer{gz, f}}, nil
	case ".xz":
		x, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return &snapshotReader{r: x, closers: []io.Closer{f}}, nil
	case ".zst":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		rc := z.IOReadCloser()
		return &snapshotReader{r: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

// snapshotReader bundles a decompressor with the file underneath it so
// both close together
type snapshotReader struct {
	r       io.Reader
	closers []io.Closer
}

func (s *snapshotReader) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *snapshotReader) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
